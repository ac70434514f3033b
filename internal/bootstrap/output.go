package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ErrNotDirectory signale un chemin de sortie occupé par un fichier.
var ErrNotDirectory = errors.New("le chemin existe mais n'est pas un répertoire")

// EnsureOutputDir crée dir (et ses parents) s'il n'existe pas.
// Idempotent ; retourne true si le répertoire a été créé.
func EnsureOutputDir(fsys afero.Fs, dir string) (bool, error) {
	st, err := fsys.Stat(dir)
	if err == nil {
		if !st.IsDir() {
			return false, fmt.Errorf("%w : %s", ErrNotDirectory, dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("échec test répertoire %s: %w", dir, err)
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("échec création répertoire %s: %w", dir, err)
	}
	return true, nil
}
