// Package main provides the entry point that previews the music and mental
// health survey.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/mxmh-go/internal/logging"
	"github.com/ukaji3/mxmh-go/pkg/tabular"
	"github.com/ukaji3/mxmh-go/pkg/tabular/output"
	"golang.org/x/term"
)

func main() {
	os.Exit(execute(os.Stdout, os.Stderr, os.Args[1:]))
}

// execute runs the root command and returns the process exit code.
func execute(stdout, stderr io.Writer, args []string) int {
	logger := logging.NewWriterLogger(stderr, false)

	cmd := newRootCmd(logger)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// nil args make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))

	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

func newRootCmd(logger logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mxmh",
		Short: "Preview the music and mental health survey",
		Long: `mxmh loads ` + tabular.DefaultPath + `
relative to the working directory and prints its first rows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logger)
		},
	}
}

func run(cmd *cobra.Command, logger logging.Logger) error {
	opts := tabular.DefaultOptions()
	opts.Logger = logger

	ds, err := tabular.Load(tabular.DefaultPath, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return output.Render(out, ds, tabular.Head(ds), isTerminal(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
