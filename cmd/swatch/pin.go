package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

func newPinCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pin <position>",
		Aliases: []string{"unpin"},
		Short:   "Toggle whether a color survives regeneration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPositionMutation(cmd, flags, positionMutation{
				operation: "toggle pin",
				apply:     (*palette.Machine).TogglePin,
				done: func(m *palette.Machine, i int) string {
					e, _ := m.At(i)
					state := "Unpinned"
					if e.Pinned {
						state = "Pinned"
					}
					return fmt.Sprintf("%s %d: %s %q", state, i+1, e.Hex, e.Name)
				},
			}, args[0])
		},
	}

	return cmd
}
