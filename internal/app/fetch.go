package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/patrickprogramme/subfetch/internal/yt"
	"github.com/patrickprogramme/subfetch/pkg/model"
)

// Fetch télécharge les sous-titres de url dans le répertoire de sortie.
// url vide => lecture du presse-papier ; language vide et formats vides =>
// valeurs de la config. Si json fait partie des formats, chaque fichier
// téléchargé est ensuite converti.
func (a *App) Fetch(ctx context.Context, url, language string, formats []model.Format) bool {
	if url == "" {
		clip, err := a.readClipboard()
		if err != nil {
			a.ui.PrintError(fmt.Sprintf("Aucune URL fournie et presse-papier inutilisable : %v", err))
			return false
		}
		url = clip
		a.ui.PrintInfo(fmt.Sprintf("Utilisation de l'URL depuis le presse-papier : %s", url))
	}

	// validation locale, avant tout appel à yt-dlp
	if err := yt.ValidateURL(url); err != nil {
		return a.fail(err)
	}

	if language == "" {
		language = a.cfg.Language
	}
	if len(formats) == 0 {
		f, err := a.cfg.FormatList()
		if err != nil {
			return a.fail(err)
		}
		formats = f
	}

	if !a.ensureOutputDir() {
		return false
	}

	a.ui.PrintInfo(fmt.Sprintf("📥 Téléchargement des sous-titres, langue : %s", language))
	a.ui.PrintInfo(fmt.Sprintf("📁 Enregistrement dans : %s", a.absDir()))

	dl, version, err := a.newFetcher(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.log.Debug("yt-dlp prêt", "version", version)

	req := yt.Request{
		URL:       url,
		Language:  language,
		Formats:   formats,
		OutputDir: a.store.Dir(),
	}
	report, err := dl.DownloadSubtitles(ctx, req)
	if report != nil {
		for _, w := range report.Warnings {
			a.log.Warn("yt-dlp", "warning", w)
		}
	}
	if err != nil {
		return a.fail(err)
	}

	a.ui.PrintSuccess("Sous-titres téléchargés")
	for _, name := range report.Files {
		a.ui.PrintInfo("   " + name)
	}

	if !slices.Contains(formats, model.FormatJSON) {
		return true
	}
	ok := true
	for _, name := range report.Files {
		f, known := model.FormatOfFile(name)
		if !known || !f.IsSubtitle() {
			continue
		}
		if !a.Convert(name, "") {
			ok = false
		}
	}
	return ok
}
