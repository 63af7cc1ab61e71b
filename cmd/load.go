package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jasonmoo/confread/internal/config"
	"github.com/jasonmoo/confread/internal/ctxlog"
	cerrors "github.com/jasonmoo/confread/internal/errors"
	"github.com/spf13/cobra"
)

// exit is os.Exit outside of tests.
var exit = os.Exit

// loadConfig loads --config and publishes it globally. Malformed JSON is
// fatal: the diagnostic goes to stdout and the process exits 1. Any
// other failure prints the abort notice and is returned to the caller.
// Both also write a structured error to stderr.
func loadConfig(cmd *cobra.Command) (*config.Document, error) {
	log := ctxlog.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	log.Debug("loading configuration", "path", globalConfig)

	if err := config.Init(globalConfig); err != nil {
		var me *config.MalformedError
		if errors.As(err, &me) {
			log.Error("malformed configuration", "path", me.Path, "line", me.Line, "column", me.Column)
			fmt.Fprintln(out, me.Diagnostic())
			writeLoadError(cmd, cerrors.NewMalformedConfig(me.Path, me.Line, me.Column, me.Message()))
			exit(1)
			return nil, err
		}

		var le *config.LoadError
		if errors.As(err, &le) {
			fmt.Fprintln(out, le.Diagnostic())
			writeLoadError(cmd, cerrors.NewLoadError(le.Path, le.Err))
		} else {
			fmt.Fprintf(out, "Failed to load configuration file '%s'. Aborting.\n", globalConfig)
			writeLoadError(cmd, cerrors.NewLoadError(globalConfig, err))
		}
		return nil, err
	}

	doc := config.MustGet()
	log.Debug("configuration loaded", "path", doc.Path, "kind", doc.Kind())
	return doc, nil
}

// writeLoadError puts the structured form of a load failure on stderr,
// leaving stdout to the one-line diagnostic.
func writeLoadError(cmd *cobra.Command, ce *cerrors.ConfError) {
	b, err := ce.ToJSON()
	if err != nil {
		ctxlog.FromContext(cmd.Context()).Warn("encoding load error", "err", err)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), string(b))
}
