package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/palette"
)

func newRegenCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regen <position>",
		Short: "Replace one unpinned color with a new random one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPositionMutation(cmd, flags, positionMutation{
				operation: "regenerate color",
				apply:     (*palette.Machine).RegenerateOne,
				done: func(m *palette.Machine, i int) string {
					return fmt.Sprintf("%d: %s", i+1, m.Describe(i))
				},
			}, args[0])
		},
	}

	return cmd
}
