package cmd

import (
	"io"

	"github.com/jasonmoo/confread/internal/config"
	"github.com/jasonmoo/confread/internal/ctxlog"
	cerrors "github.com/jasonmoo/confread/internal/errors"
	"github.com/jasonmoo/confread/internal/output"
	"github.com/spf13/cobra"
)

var (
	globalConfig    string
	globalOutput    string
	globalLogLevel  string
	globalLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "confread",
	Short: "Load and inspect a JSON configuration file",
	Long: `confread loads a JSON configuration file and reports on it.

A file that is not valid JSON aborts with exit status 1 after printing
the parser position. A file that cannot be read prints an abort notice
and the underlying error.

Examples:
  confread check
  confread -c /etc/app/config.json show
  confread get servers.0.host
  confread keys servers -o flat`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := ctxlog.New(globalLogLevel, globalLogFormat, cmd.ErrOrStderr())
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVarP(&globalOutput, "output", "o", "json", "output format (see 'confread formats')")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "warn", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&globalLogFormat, "log-format", "text", "log format: text|json")
}

// GetWriter returns a writer for the --output format.
func GetWriter(w io.Writer) (*output.Writer, error) {
	if globalOutput == "" || globalOutput == "json" {
		return output.NewWriter(w, true), nil
	}
	writer, err := output.NewWriterWithFormat(w, globalOutput)
	if err != nil {
		return nil, cerrors.NewUnknownFormat(globalOutput, output.DefaultRegistry.List())
	}
	return writer, nil
}
