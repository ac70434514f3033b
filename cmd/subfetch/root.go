package main

import (
	"github.com/spf13/cobra"
)

const rootExamples = `  subfetch fetch https://youtu.be/tYqehyG2K38
  subfetch fetch https://youtu.be/tYqehyG2K38 -l en -f vtt -f srt
  subfetch list
  subfetch search "mot clé"
  subfetch convert sous-titres.vtt`

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "subfetch",
		Short:         "Téléchargement et exploitation de sous-titres YouTube",
		Example:       rootExamples,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "chemin du fichier de configuration")
	pf.StringVarP(&flags.directory, "directory", "d", "", "répertoire de sortie (défaut : output_dir de la config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "niveau de journalisation (debug, info, warn, error)")

	rootCmd.AddCommand(newFetchCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newConvertCommand(ctx))

	return rootCmd
}
