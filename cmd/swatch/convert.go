package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
)

func newConvertCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <hex>",
		Short: "Print a color in every display format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseHexArg("convert color", args[0])
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, f := range codec.Formats() {
				fmt.Fprintf(writer, "%s\t%s\n", f, codec.Render(hex, f))
			}
			fmt.Fprintf(writer, "TEXT\t%s\n", codec.TextColor(hex))
			return writer.Flush()
		},
	}

	return cmd
}
