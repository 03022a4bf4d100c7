package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
)

func newNameCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <hex>",
		Short: "Find the closest reference color name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseHexArg("name color", args[0])
			if err != nil {
				return err
			}

			app, err := newAppContext(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			entry, dist := app.Namer.ClosestEntry(hex)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, distance %.1f)\n", entry.Name, entry.Hex, dist)
			return nil
		},
	}

	return cmd
}

func parseHexArg(operation, arg string) (string, error) {
	hex := hexcolor.Normalize(arg)
	if !hexcolor.IsValid(hex) {
		return "", newCommandError(operation, fmt.Sprintf("reading %q", arg), fmt.Errorf("not a #rrggbb color"), "Pass six hex digits, e.g. #3498db.")
	}
	return hex, nil
}
