package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/patrickprogramme/subfetch/internal/fsutil"
)

// EnsureConfigPresent copie un fichier embarqué (assetPath dans src) vers dstPath
// si dstPath n'existe pas encore.
// - dstPath : chemin complet sur disque (ex: ~/.config/subfetch/subfetch.yaml)
// - src : embed.FS (ou autre fs.FS) contenant l'asset
// - assetPath : chemin dans src vers l'asset (ex: "subfetch.example.yaml")
// Comportement : idempotent, ne remplace jamais un fichier existant.
// Retourne true si le fichier a été créé.
func EnsureConfigPresent(fsys afero.Fs, dstPath string, src fs.FS, assetPath string) (bool, error) {
	// sécurité: vérifier parent
	parent := filepath.Dir(dstPath)
	if parent == "" {
		parent = "."
	}
	if st, err := fsys.Stat(parent); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("échec test parent %s: %w", parent, err)
		}
		// créer le dossier parent si absent
		if err := fsys.MkdirAll(parent, 0o755); err != nil {
			return false, fmt.Errorf("échec création répertoire parent %s: %w", parent, err)
		}
	} else if !st.IsDir() {
		return false, fmt.Errorf("le parent existe mais n'est pas un répertoire : %s", parent)
	}

	// si le fichier existe déjà -> ne rien faire
	if _, err := fsys.Stat(dstPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}

	// lire l'asset embarqué
	data, err := fs.ReadFile(src, filepath.ToSlash(assetPath))
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	// écrire atomiquement
	if err := fsutil.WriteFileAtomic(fsys, dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}
	return true, nil
}
