package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// MatchingFiles renvoie les noms (sans le répertoire) des fichiers de dir
// correspondant à l'un des motifs fournis dans patterns.
// - patterns utilise la syntaxe de filepath.Match/glob (ex: "*.vtt").
// - La recherche n'est pas récursive ; elle cherche uniquement dans dir.
// - L'ordre suit celui des motifs, puis l'ordre alphabétique pour chaque motif.
// Un répertoire absent donne (nil, nil).
func MatchingFiles(fsys afero.Fs, dir string, patterns []string) ([]string, error) {
	// si le répertoire n'existe pas -> pas de fichiers correspondants
	info, err := fsys.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var out []string
	seen := make(map[string]struct{})
	for _, pat := range patterns {
		matches, err := afero.Glob(fsys, filepath.Join(dir, pat))
		if err != nil {
			// généralement Glob ne retourne pas d'erreur sauf motif invalide
			return nil, err
		}
		sort.Strings(matches)
		for _, m := range matches {
			name := filepath.Base(m)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out, nil
}

// WriteFileAtomic écrit data dans destPath de manière atomique : écriture dans
// un fichier temporaire du même répertoire puis Rename(tmp -> dest).
// Le répertoire parent doit exister : il n'est jamais créé ici.
//
// destPath : chemin complet vers le fichier cible.
// data : contenu à écrire.
// perm : permissions POSIX (ex: 0o644).
func WriteFileAtomic(fsys afero.Fs, destPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(destPath)
	if dir == "" {
		dir = "."
	}

	// creation fichier temp
	tmp, err := afero.TempFile(fsys, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// cleanup si échec
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = fsys.Remove(tmpName)
		}
	}()

	// écriture
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	// best-effort : les données sont au moins dans le cache du système
	_ = tmp.Sync()

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// set permission (best-effort)
	_ = fsys.Chmod(tmpName, perm)

	// rename
	if err := fsys.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename tmp -> dest: %w", err)
	}
	committed = true
	return nil
}
