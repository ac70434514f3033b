package app

// List affiche le contenu du répertoire de sortie (index, nom, taille).
// Un répertoire vide n'est pas un échec.
func (a *App) List() bool {
	if !a.ensureOutputDir() {
		return false
	}
	files, err := a.store.List()
	if err != nil {
		return a.fail(err)
	}
	if len(files) == 0 {
		a.ui.PrintInfo("📭 Aucun sous-titre téléchargé")
		return true
	}
	a.ui.PrintFiles(a.store.Dir(), files)
	return true
}
