package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Describe where palette state is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			path := app.Store.Path()
			if path == "" {
				path = "(in memory)"
			}
			theme := app.Adapter.Theme()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver: %s\n", app.Store.Driver())
			fmt.Fprintf(out, "path: %s\n", path)
			fmt.Fprintf(out, "colors: %d of %d\n", app.Machine.Len(), app.Machine.Size())
			fmt.Fprintf(out, "%s\n", formatSummary(app.Machine.Formats()))
			fmt.Fprintf(out, "reference: %s (%d colors)\n", app.Namer.List().Source(), app.Namer.List().Len())
			fmt.Fprintf(out, "theme: %s, radius %s\n", theme.Color, theme.Radius)
			return nil
		},
	}

	return cmd
}
