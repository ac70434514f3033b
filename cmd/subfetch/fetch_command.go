package main

import (
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subfetch/internal/app"
	"github.com/patrickprogramme/subfetch/pkg/model"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var language string
	var formats []string

	cmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "Télécharger les sous-titres d'une vidéo YouTube",
		Long: "Télécharge les sous-titres d'une vidéo dans le répertoire de sortie.\n" +
			"Sans URL, le contenu du presse-papier est utilisé.\n" +
			"Le format json est produit localement à partir des fichiers vtt/srt.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var selected []model.Format
			if len(formats) > 0 {
				parsed, err := model.ParseFormats(formats)
				if err != nil {
					return err
				}
				selected = parsed
			}
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			return ctx.run(cmd, func(a *app.App) bool {
				return a.Fetch(cmd.Context(), url, language, selected)
			})
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "code de langue (défaut : language de la config)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "formats : vtt, srt, json (répétable)")
	return cmd
}
