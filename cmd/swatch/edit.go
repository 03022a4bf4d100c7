package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <position> [hex]",
		Short: "Set the hex value of a color",
		Long: "Set the hex value of a color. The name is replaced by the closest reference " +
			"color and the pin is kept. Without a hex argument swatch prompts for one.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags, args)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags, args []string) error {
	index, err := parsePosition("edit color", args[0])
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	current, ok := app.Machine.At(index)
	if !ok {
		fmt.Fprintln(out, rejection(app.Machine, index))
		return nil
	}

	var hex string
	switch {
	case len(args) == 2:
		hex = hexcolor.Normalize(args[1])
	case canPrompt(cmd.InOrStdin(), out):
		hex, err = promptHex(fmt.Sprintf("New hex for color %d (%s)", index+1, current.Name), current.Hex)
		if errors.Is(err, errAborted) {
			fmt.Fprintln(out, "Edit cancelled.")
			return nil
		}
		if err != nil {
			return newCommandError("edit color", "reading hex input", err, "Pass the hex as an argument instead.")
		}
	default:
		return newCommandError("edit color", "reading hex input", errors.New("no hex given and no terminal to prompt on"), "Run 'swatch edit <position> <hex>'.")
	}

	if !hexcolor.IsValid(hex) {
		fmt.Fprintf(out, "Ignored %q: expected # followed by six hex digits.\n", hex)
		return nil
	}

	if !app.Machine.EditHex(index, hex) {
		fmt.Fprintln(out, rejection(app.Machine, index))
		return nil
	}

	fmt.Fprintf(out, "%d: %s\n", index+1, app.Machine.Describe(index))
	return nil
}
