package main

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Replace every unpinned color with a new random one",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			app.Machine.RegenerateAll()
			return renderPalette(cmd.OutOrStdout(), app.Machine, supportsUnicode(cmd.OutOrStdout()))
		},
	}

	return cmd
}
