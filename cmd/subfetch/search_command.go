package main

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subfetch/internal/app"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "search <terme>",
		Short: "Chercher un terme dans les sous-titres téléchargés",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(a *app.App) bool {
				return a.Search(args[0], file)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "limiter la recherche à ce fichier")
	return cmd
}
