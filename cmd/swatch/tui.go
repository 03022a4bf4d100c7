package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive palette editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}

	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, appOptions{interactive: true})
	if err != nil {
		return err
	}
	defer app.Close()

	m := tui.NewModel(app.Machine, tui.Options{
		Debounce:    app.Config.Editor.Debounce,
		RemoveDelay: app.Config.Editor.RemoveDelay,
		Export:      tui.DirExporter(app.Config.Export.Dir, app.ExportOptions()),
		Logger:      app.Logger,
		Unicode:     supportsUnicode(os.Stdout),
		Theme:       app.Adapter.Theme(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}

	return nil
}
