package main

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subfetch/internal/app"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <fichier> [sortie]",
		Short: "Convertir un fichier vtt/srt en JSON",
		Long: "Convertit un fichier de sous-titres du répertoire de sortie en tableau JSON\n" +
			"de {timestamp, text}. Sans sortie, le fichier prend l'extension .json.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			return ctx.run(cmd, func(a *app.App) bool {
				return a.Convert(args[0], output)
			})
		},
	}
}
