package cmd

import (
	"github.com/jasonmoo/confread/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configuration and report its shape",
	Long: `Load the configuration file and report its path, root kind, number of
top-level members and number of leaf keys. Use it in scripts to fail fast on a bad file.

Examples:
  confread check
  confread check -c deploy/config.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	writer, err := GetWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	doc, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	resp := output.CheckResponse{
		Path: doc.Path,
		Kind: string(doc.Kind()),
		Keys: len(doc.Keys()),
	}
	if m, ok := doc.Map(); ok {
		resp.Members = len(m)
	}
	return writer.Write(resp)
}
