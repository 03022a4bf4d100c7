package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/store"
	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	var radius string

	cmd := &cobra.Command{
		Use:   "theme [color]",
		Short: "Show or set the editor theme color and border radius",
		Long: "Show or set the editor theme. Colors: " + strings.Join(tui.ThemeNames(), ", ") +
			". Radius: " + strings.Join(store.Radii(), ", ") + " (0 draws square borders).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			theme := app.Adapter.Theme()
			changed := false
			if len(args) == 1 {
				color := strings.ToLower(strings.TrimSpace(args[0]))
				if !strings.HasPrefix(color, "theme-") {
					color = "theme-" + color
				}
				if !slices.Contains(tui.ThemeNames(), color) {
					return newCommandError("set theme", fmt.Sprintf("reading color %q", args[0]), fmt.Errorf("unknown theme color"), "Use one of: "+strings.Join(tui.ThemeNames(), ", ")+".")
				}
				theme.Color = color
				changed = true
			}
			if cmd.Flags().Changed("radius") {
				if !slices.Contains(store.Radii(), radius) {
					return newCommandError("set theme", fmt.Sprintf("reading radius %q", radius), fmt.Errorf("unsupported radius"), "Use one of: "+strings.Join(store.Radii(), ", ")+".")
				}
				theme.Radius = radius
				changed = true
			}

			if changed {
				if err := app.Adapter.SetTheme(theme); err != nil {
					return newCommandError("set theme", "saving theme", err, "Check that the state store is writable.")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "theme: %s, radius %s\n", theme.Color, theme.Radius)
			return nil
		},
	}

	cmd.Flags().StringVar(&radius, "radius", "", "Border radius")

	return cmd
}
