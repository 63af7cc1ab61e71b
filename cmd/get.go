package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Long: `Print the value at a dotted key path.

Strings are printed without quotes and numbers, booleans and null as
JSON literals, so the output can be used directly in shell scripts.
Objects and arrays are printed in the selected output format.

Examples:
  confread get name
  confread get servers.1.port
  PORT=$(confread get server.port)`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	writer, err := GetWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	doc, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	v, err := doc.Lookup(args[0])
	if err != nil {
		return writeLookupError(writer, doc, err)
	}

	out := cmd.OutOrStdout()
	switch t := v.(type) {
	case string:
		_, err = fmt.Fprintln(out, t)
	case map[string]any, []any:
		err = writer.Write(t)
	default:
		var b []byte
		if b, err = json.Marshal(t); err == nil {
			_, err = fmt.Fprintln(out, string(b))
		}
	}
	return err
}
