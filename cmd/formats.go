package cmd

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/jasonmoo/confread/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output formats",
	Long: `List the output formats accepted by --output. The format selected by
the current flags is marked with '*'.

Examples:
  confread formats
  confread formats -o yaml
  confread show -o template:./env.tmpl`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	formatters := output.DefaultRegistry.All()
	slices.SortFunc(formatters, func(a, b output.Formatter) int {
		return strings.Compare(a.Name(), b.Name())
	})

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, f := range formatters {
		mark := " "
		if f.Name() == globalOutput {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", mark, f.Name(), f.Description())
	}
	mark := " "
	if strings.HasPrefix(globalOutput, "template:") {
		mark = "*"
	}
	fmt.Fprintf(tw, "%s template:<path>\tGo text/template file, executed per result\n", mark)
	return tw.Flush()
}
