package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

// positionMutation is a single-entry palette change. apply reports whether
// the machine accepted it.
type positionMutation struct {
	operation string
	apply     func(m *palette.Machine, i int) bool
	done      func(m *palette.Machine, i int) string
}

func runPositionMutation(cmd *cobra.Command, flags *rootFlags, mutation positionMutation, arg string) error {
	index, err := parsePosition(mutation.operation, arg)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	if !mutation.apply(app.Machine, index) {
		// rejected mutations are no-ops, not failures
		fmt.Fprintln(cmd.OutOrStdout(), rejection(app.Machine, index))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), mutation.done(app.Machine, index))
	return nil
}

func rejection(m *palette.Machine, index int) string {
	e, ok := m.At(index)
	switch {
	case !ok:
		return fmt.Sprintf("No color at position %d (palette has %d).", index+1, m.Len())
	case e.Pinned:
		return fmt.Sprintf("Color %d is pinned; unpin it first.", index+1)
	default:
		return fmt.Sprintf("Color %d was left unchanged.", index+1)
	}
}
