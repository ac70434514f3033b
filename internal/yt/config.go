package yt

import (
	"path/filepath"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

// outputTemplate est le modèle de nom de fichier passé à yt-dlp (-o).
const outputTemplate = "%(title)s.%(ext)s"

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	SkipDownload bool
	NoWarnings   bool // true => ajouter --no-warnings
	NoProgress   bool
	NoUpdate     bool
	NoConfig     bool // true => ajouter --no-config pour ignorer les configs utilisateur
	AutoSubs     bool // true => accepter aussi les sous-titres automatiques
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning
// et autoSubs viennent du yaml de config
func NewYtDlpConfig(showWarning, autoSubs bool) *YtDlpConfig {
	return &YtDlpConfig{
		SkipDownload: true,
		NoWarnings:   !showWarning,
		NoProgress:   true,
		NoUpdate:     true,
		NoConfig:     true, // valeur par défaut : ignorer les fichiers de config extérieurs (plus prévisible)
		AutoSubs:     autoSubs,
	}
}

// BuildArgs construit les arguments d'un téléchargement de sous-titres
// pour un format donné.
func (c *YtDlpConfig) BuildArgs(req Request, format model.Format) []string {
	args := make([]string, 0, 20)
	// mettre --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	args = append(args, "--write-subs")
	if c.AutoSubs {
		args = append(args, "--write-auto-subs")
	}
	args = append(args,
		"--sub-langs", req.Language,
		"--sub-format", string(format)+"/best",
		"--convert-subs", string(format),
		"-o", filepath.Join(req.OutputDir, outputTemplate),
	)
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	args = append(args, req.URL)
	return args
}
