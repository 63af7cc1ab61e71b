package cmd

import (
	"errors"

	"github.com/jasonmoo/confread/internal/config"
	cerrors "github.com/jasonmoo/confread/internal/errors"
	"github.com/jasonmoo/confread/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Print the configuration or the subtree at a key",
	Long: `Print the loaded configuration in the selected output format.

With a key, only the value at that dotted path is printed. Array
elements are addressed by index.

Examples:
  confread show
  confread show servers -o yaml
  confread show servers.0 -o pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	writer, err := GetWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	doc, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var key string
	if len(args) > 0 {
		key = args[0]
	}

	v, err := doc.Lookup(key)
	if err != nil {
		return writeLookupError(writer, doc, err)
	}
	return writer.Write(v)
}

// writeLookupError reports a failed Lookup as a structured error, with
// suggestions when the key simply does not exist.
func writeLookupError(w *output.Writer, doc *config.Document, err error) error {
	var ke *config.KeyError
	if !errors.As(err, &ke) {
		return err
	}

	var ce *cerrors.ConfError
	if ke.Reason != "" {
		ce = cerrors.NewInvalidKey(ke.Key, ke.Missing, ke.Reason)
	} else {
		ce = cerrors.NewKeyNotFound(ke.Key, cerrors.SuggestKeys(ke.Key, doc.Keys(), 5))
	}
	return w.WriteError(string(ce.Code), ce.Message, ce.Suggestions, ce.Context)
}
