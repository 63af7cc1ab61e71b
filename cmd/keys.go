package cmd

import (
	"strings"

	"github.com/jasonmoo/confread/internal/output"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [prefix]",
	Short: "List the dotted key paths of every leaf value",
	Long: `List the dotted key path of every leaf value in the configuration.

A prefix restricts the listing to keys at or below that path. Prefixes
match whole segments, so "server" does not match "servers.0.host".

Examples:
  confread keys
  confread keys servers
  confread keys --plain | fzf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

var keysPlain bool

func init() {
	rootCmd.AddCommand(keysCmd)

	keysCmd.Flags().BoolVar(&keysPlain, "plain", false, "One key per line, no formatting")
}

func runKeys(cmd *cobra.Command, args []string) error {
	writer, err := GetWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	doc, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}

	keys := filterKeys(doc.Keys(), prefix)

	if keysPlain {
		out := cmd.OutOrStdout()
		for _, k := range keys {
			if _, err := out.Write([]byte(k + "\n")); err != nil {
				return err
			}
		}
		return nil
	}

	return writer.Write(output.KeysResponse{
		Prefix: prefix,
		Keys:   keys,
		Count:  len(keys),
	})
}

func filterKeys(keys []string, prefix string) []string {
	result := []string{}
	for _, k := range keys {
		if prefix == "" || k == prefix || strings.HasPrefix(k, prefix+".") {
			result = append(result, k)
		}
	}
	return result
}
