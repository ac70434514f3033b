package ui

import (
	"github.com/patrickprogramme/subfetch/internal/search"
	"github.com/patrickprogramme/subfetch/internal/store"
)

// Interface regroupe l'affichage destiné à l'utilisateur.
// Le journal de diagnostic passe par le logger, pas par ici.
type Interface interface {
	PrintInfo(s string)
	PrintSuccess(s string)
	PrintWarning(s string)
	PrintError(s string)

	// PrintFiles affiche le contenu du répertoire de sortie (index, nom, taille).
	PrintFiles(dir string, files []store.FileEntry)
	// PrintResult affiche les correspondances d'une recherche, fichier par fichier.
	PrintResult(res search.Result)
}
