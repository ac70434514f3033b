package main

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subfetch/internal/app"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lister les fichiers du répertoire de sortie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, (*app.App).List)
		},
	}
}
