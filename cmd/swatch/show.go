package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/internal/store"
	"github.com/alexisbeaulieu97/swatch/pkg/diff"
)

type showOptions struct {
	jsonOutput bool
	watch      bool
	diff       bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Print again whenever the stored palette changes")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "With --watch, print only what changed")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions) error {
	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	useUnicode := supportsUnicode(cmd.OutOrStdout())
	render := func() (string, error) {
		var buf bytes.Buffer
		var err error
		if opts.jsonOutput {
			err = renderPaletteJSON(&buf, app.Machine)
		} else {
			err = renderPalette(&buf, app.Machine, useUnicode)
		}
		return buf.String(), err
	}

	// watch before printing so no change slips between the two
	var watcher *store.Watcher
	if opts.watch {
		watcher, err = store.NewWatcher(app.Store.Path(), store.DefaultWatchDebounce, app.Logger)
		if err != nil {
			return newCommandError("watch palette", fmt.Sprintf("watching the %s store", app.Store.Driver()), err, "Use the file or sqlite store driver to watch for changes.")
		}
	}

	current, err := render()
	if err != nil {
		return newCommandError("show palette", "rendering output", err, "Try again with --verbose for details.")
	}
	fmt.Fprint(cmd.OutOrStdout(), current)
	if watcher == nil {
		return nil
	}

	return watchPalette(cmd, app, watcher, opts.diff, current, render)
}

func watchPalette(cmd *cobra.Command, app *AppContext, watcher *store.Watcher, showDiff bool, previous string, render func() (string, error)) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var mu sync.Mutex
	return watcher.Run(ctx, func() {
		mu.Lock()
		defer mu.Unlock()

		if err := app.Reload(); err != nil {
			app.Logger.Error(err, "reloading palette")
			return
		}
		next, err := render()
		if err != nil {
			app.Logger.Error(err, "rendering palette")
			return
		}
		if next == previous {
			return
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		if showDiff {
			fmt.Fprint(out, diff.Unified(previous, next, "previous", "current"))
		} else {
			fmt.Fprint(out, next)
		}
		previous = next
	})
}

func renderPalette(w io.Writer, machine *palette.Machine, useUnicode bool) error {
	formats := machine.Formats()
	writer := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"#", "PIN", "NAME"}
	header = append(header, formats.Strings()...)
	fmt.Fprintln(writer, strings.Join(header, "\t"))

	for i, e := range machine.Colors() {
		row := []string{fmt.Sprintf("%d", i+1), pinMark(e.Pinned, useUnicode), e.Name}
		row = append(row, codec.RenderAll(e.Hex, formats)...)
		if useUnicode {
			// last column, escape codes would skew the tab stops
			row = append(row, chip(e.Hex))
		}
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}

	return writer.Flush()
}

func pinMark(pinned, useUnicode bool) string {
	switch {
	case pinned && useUnicode:
		return "●"
	case pinned:
		return "*"
	case useUnicode:
		return "○"
	default:
		return "-"
	}
}

// chip is a small block filled with hex, for terminals.
func chip(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

type paletteJSON struct {
	Colors  []palette.Entry `json:"colors"`
	Formats codec.FormatSet `json:"formats"`
}

func renderPaletteJSON(w io.Writer, machine *palette.Machine) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(paletteJSON{Colors: machine.Colors(), Formats: machine.Formats()})
}
