package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	var removed palette.Entry

	cmd := &cobra.Command{
		Use:     "remove <position>",
		Aliases: []string{"rm"},
		Short:   "Remove an unpinned color from the palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPositionMutation(cmd, flags, positionMutation{
				operation: "remove color",
				apply: func(m *palette.Machine, i int) bool {
					removed, _ = m.At(i)
					return m.Remove(i)
				},
				done: func(m *palette.Machine, i int) string {
					return fmt.Sprintf("Removed %s %q (%d colors left).", removed.Hex, removed.Name, m.Len())
				},
			}, args[0])
		},
	}

	return cmd
}
