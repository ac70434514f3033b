package app

import (
	"github.com/patrickprogramme/subfetch/internal/search"
)

// Search cherche term dans file, ou dans tous les sous-titres du répertoire
// si file est vide. Aucune correspondance n'est pas un échec ; un fichier
// explicite introuvable l'est.
func (a *App) Search(term, file string) bool {
	if !a.ensureOutputDir() {
		return false
	}
	files, err := search.Candidates(a.store, file)
	if err != nil {
		return a.fail(err)
	}
	if len(files) == 0 {
		a.ui.PrintWarning("Aucun fichier de sous-titres")
		return true
	}

	res := search.NewEngine(a.store, a.log).Search(term, files)
	a.log.Debug("recherche terminée", "term", term, "files", res.Searched, "matches", res.Total())
	a.ui.PrintResult(res)
	if res.NoMatches() {
		a.ui.PrintError("Aucune correspondance trouvée")
	}
	return true
}
