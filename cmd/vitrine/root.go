package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
)

type rootFlags struct {
	noPrefs bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vitrine [gallery.yaml]",
		Short:         "Vitrine displays an image gallery in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultGalleryFile
			if len(args) == 1 {
				path = args[0]
			}
			return runView(path, flags, log)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.noPrefs, "no-prefs", false, "Do not read or write persisted preferences")

	cmd.AddCommand(newViewCmd(flags, log))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
