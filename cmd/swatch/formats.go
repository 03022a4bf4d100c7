package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
)

func newFormatsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats [TAG...]",
		Short: "Show or set the display formats",
		Long: "Show or set the display formats. Tags: " + strings.Join(codec.FormatNames(), ", ") +
			". Without tags swatch prompts on a terminal and prints the current set otherwise.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormats(cmd, flags, args)
		},
	}

	return cmd
}

func runFormats(cmd *cobra.Command, flags *rootFlags, args []string) error {
	formats := make([]codec.Format, 0, len(args))
	for _, arg := range args {
		f, err := codec.ParseFormat(arg)
		if err != nil {
			return newCommandError("set formats", fmt.Sprintf("reading tag %q", arg), err, "Use one of: "+strings.Join(codec.FormatNames(), ", ")+".")
		}
		formats = append(formats, f)
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	switch {
	case len(formats) > 0:
		app.Machine.SetFormats(codec.NewFormatSet(formats...))
	case canPrompt(cmd.InOrStdin(), out):
		set, err := promptFormats(app.Machine.Formats())
		if errors.Is(err, errAborted) {
			fmt.Fprintln(out, "Formats unchanged.")
			return nil
		}
		if err != nil {
			return newCommandError("set formats", "reading selection", err, "Pass the tags as arguments instead.")
		}
		app.Machine.SetFormats(set)
	}

	fmt.Fprintln(out, formatSummary(app.Machine.Formats()))
	return nil
}

func formatSummary(set codec.FormatSet) string {
	if set.Len() == 0 {
		return "Formats: (none)"
	}
	return "Formats: " + strings.Join(set.Strings(), ", ")
}
