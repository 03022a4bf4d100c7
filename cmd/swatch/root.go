package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	storeDriver string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch generates, edits and exports color palettes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Piped output gets the plain listing
			if isTerminal(cmd.OutOrStdout()) {
				return runTUI(cmd, flags)
			}
			return runShow(cmd, flags, &showOptions{})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.swatch/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.storeDriver, "store", "", "Override the state store driver (file, sqlite, memory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newRegenCmd(flags))
	cmd.AddCommand(newPinCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newFormatsCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newNameCmd(flags))
	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newStateCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
