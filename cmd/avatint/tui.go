package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/avatint/internal/tui"
)

func newTUICmd(root *rootFlags) *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive customizer",
		Long:  `Launch the terminal customizer. Each part has R, G and B inputs plus a brightness slider; the preview follows every edit and every terminal resize.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("svg") {
				return runTUIWith(cmd, root, svgPath)
			}
			return runTUI(cmd, root)
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "Where ctrl+s writes the SVG (defaults to the configured output path)")
	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	return runTUIWith(cmd, flags, "")
}

func runTUIWith(cmd *cobra.Command, flags *rootFlags, svgPath string) error {
	var logWriter io.Writer = io.Discard
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}

	log, err := newLogger(flags, logWriter)
	if err != nil {
		return err
	}

	app, err := newApp(flags, log)
	if err != nil {
		return err
	}
	if svgPath == "" {
		svgPath = app.cfg.Output.SVGPath
	}

	m := tui.NewModel(app.view, tui.Options{
		FrameInterval: app.cfg.FrameInterval(),
		SVGPath:       svgPath,
		Logger:        log,
	})

	log.Info("launching customizer")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "customizer failed")
		return fmt.Errorf("failed to run customizer: %w", err)
	}
	log.Info("customizer closed")
	return nil
}
