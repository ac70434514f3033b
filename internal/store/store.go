// Package store donne accès au répertoire de sortie : c'est la "base de données"
// des sous-titres téléchargés. Les fichiers y sont adressés par leur nom seul.
//
// L'accès passe par afero afin que les tests puissent utiliser un système de
// fichiers en mémoire (afero.NewMemMapFs).
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/patrickprogramme/subfetch/internal/fsutil"
)

const filePerm = 0o644

// Erreurs exportées
var (
	ErrNotFound = errors.New("fichier introuvable")
	ErrDecode   = errors.New("contenu non UTF-8")
	ErrWrite    = errors.New("écriture impossible")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileEntry décrit un fichier du répertoire de sortie (calculé à la volée).
type FileEntry struct {
	Name string
	Size int64
}

// Reader lit un fichier texte par son nom.
type Reader interface {
	ReadText(name string) (string, error)
}

// Writer persiste un fichier par son nom.
type Writer interface {
	Write(name string, data []byte) error
}

// Store est l'abstraction du répertoire de sortie utilisée par l'application.
type Store interface {
	Reader
	Writer
	Dir() string
	List() ([]FileEntry, error)
	Read(name string) ([]byte, error)
	Exists(name string) bool
	Glob(patterns ...string) ([]string, error)
}

// DirStore implémente Store sur un répertoire d'un afero.Fs.
type DirStore struct {
	fs  afero.Fs
	dir string
}

// New construit un DirStore. Le répertoire n'est pas créé ici (voir bootstrap).
func New(fsys afero.Fs, dir string) *DirStore {
	return &DirStore{fs: fsys, dir: filepath.Clean(dir)}
}

// NewOS construit un DirStore sur le système de fichiers réel.
func NewOS(dir string) *DirStore {
	return New(afero.NewOsFs(), dir)
}

// Dir retourne le chemin du répertoire de sortie.
func (s *DirStore) Dir() string {
	return s.dir
}

// Fs expose le système de fichiers sous-jacent.
func (s *DirStore) Fs() afero.Fs {
	return s.fs
}

// List énumère toutes les entrées du répertoire (non récursif, sans filtre
// d'extension), triées par nom.
func (s *DirStore) List() ([]FileEntry, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("lecture du répertoire %s : %w", s.dir, err)
	}
	entries := make([]FileEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, FileEntry{Name: info.Name(), Size: info.Size()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Read lit le contenu brut d'un fichier.
func (s *DirStore) Read(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("lecture %s : %w", name, err)
	}
	return data, nil
}

// ReadText lit un fichier et le décode en UTF-8.
func (s *DirStore) ReadText(name string) (string, error) {
	data, err := s.Read(name)
	if err != nil {
		return "", err
	}
	return DecodeText(name, data)
}

// Write écrit data dans le fichier name de façon atomique.
// Le répertoire de sortie doit exister.
func (s *DirStore) Write(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := fsutil.WriteFileAtomic(s.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, name, err)
	}
	return nil
}

// Exists indique si name existe dans le répertoire.
func (s *DirStore) Exists(name string) bool {
	path, err := s.path(name)
	if err != nil {
		return false
	}
	_, err = s.fs.Stat(path)
	return err == nil
}

// Glob renvoie les noms correspondant aux motifs, dans l'ordre des motifs.
func (s *DirStore) Glob(patterns ...string) ([]string, error) {
	return fsutil.MatchingFiles(s.fs, s.dir, patterns)
}

func (s *DirStore) path(name string) (string, error) {
	if err := fsutil.ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// DecodeText valide que data est de l'UTF-8 (BOM éventuel retiré).
func DecodeText(name string, data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrDecode, name)
	}
	return string(data), nil
}
