package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string
}

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "avatint",
		Short:         "avatint recolors a simple avatar part by part",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the customizer on a terminal and
			// render the default avatar otherwise.
			if isTerminal() {
				return runTUI(cmd, flags)
			}
			return runRender(cmd, flags, defaultRenderOptions())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (the TUI discards logs otherwise)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
