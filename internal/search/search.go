// Package search recherche un terme, ligne par ligne, dans les fichiers de
// sous-titres du répertoire de sortie.
package search

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"github.com/patrickprogramme/subfetch/internal/store"
)

const (
	// DisplayLimit est le nombre de correspondances affichées par fichier.
	DisplayLimit = 5
	// LineWidth est la largeur maximale (en runes) d'une ligne affichée.
	LineWidth = 80
)

// SubtitlePatterns sont les extensions reconnues quand aucun fichier n'est précisé.
var SubtitlePatterns = []string{"*.vtt", "*.srt"}

// Match est une ligne correspondante.
type Match struct {
	File string
	Line int    // numéro de ligne, à partir de 1
	Text string // ligne trimée et tronquée à LineWidth runes
}

// FileMatches regroupe toutes les correspondances d'un fichier, dans l'ordre.
// La limite d'affichage n'ampute jamais Matches : voir Shown et Remaining.
type FileMatches struct {
	File    string
	Matches []Match
}

// Total retourne le nombre total de correspondances.
func (f FileMatches) Total() int { return len(f.Matches) }

// Shown retourne les DisplayLimit premières correspondances.
func (f FileMatches) Shown() []Match {
	if len(f.Matches) <= DisplayLimit {
		return f.Matches
	}
	return f.Matches[:DisplayLimit]
}

// Remaining retourne le nombre de correspondances non affichées ("k de plus").
func (f FileMatches) Remaining() int {
	if n := len(f.Matches) - DisplayLimit; n > 0 {
		return n
	}
	return 0
}

// Truncated indique si l'affichage est limité.
func (f FileMatches) Truncated() bool { return f.Remaining() > 0 }

// FileWarning décrit un fichier qui n'a pas pu être lu.
type FileWarning struct {
	File string
	Err  error
}

// Result est le résultat d'une recherche sur un ensemble de fichiers.
type Result struct {
	Term     string
	Searched int           // nombre de fichiers candidats
	Files    []FileMatches // seulement les fichiers ayant au moins une correspondance
	Warnings []FileWarning
}

// Total retourne le nombre total de correspondances, tous fichiers confondus.
func (r Result) Total() int {
	n := 0
	for _, f := range r.Files {
		n += f.Total()
	}
	return n
}

// Empty indique qu'il n'y avait aucun fichier à parcourir.
func (r Result) Empty() bool { return r.Searched == 0 }

// NoMatches indique que des fichiers ont été parcourus sans correspondance.
func (r Result) NoMatches() bool { return !r.Empty() && r.Total() == 0 }

// For retourne les correspondances d'un fichier (vide si aucune).
func (r Result) For(file string) FileMatches {
	for _, f := range r.Files {
		if f.File == file {
			return f
		}
	}
	return FileMatches{File: file}
}

// Lister fournit l'ensemble des fichiers candidats.
type Lister interface {
	Exists(name string) bool
	Glob(patterns ...string) ([]string, error)
}

// Candidates retourne les fichiers à parcourir : file s'il est donné (il doit
// exister), sinon tous les fichiers .vtt puis .srt du répertoire.
func Candidates(l Lister, file string) ([]string, error) {
	if file != "" {
		if !l.Exists(file) {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, file)
		}
		return []string{file}, nil
	}
	files, err := l.Glob(SubtitlePatterns...)
	if err != nil {
		return nil, fmt.Errorf("liste des sous-titres : %w", err)
	}
	return files, nil
}

// Engine parcourt les fichiers via un store.Reader.
type Engine struct {
	src    store.Reader
	logger *log.Logger
}

// NewEngine construit un moteur de recherche. logger peut être nil.
func NewEngine(src store.Reader, logger *log.Logger) *Engine {
	return &Engine{src: src, logger: logger}
}

// Search cherche term (insensible à la casse, sous-chaîne) dans chaque ligne
// brute de chaque fichier. Les lignes de timing et les balises sont donc
// aussi concernées. Un fichier illisible produit un avertissement et
// n'interrompt jamais la recherche dans les autres.
func (e *Engine) Search(term string, files []string) Result {
	res := Result{Term: term, Searched: len(files)}
	folder := cases.Fold()
	needle := folder.String(term)

	for _, file := range files {
		text, err := e.src.ReadText(file)
		if err != nil {
			e.warn(file, err)
			res.Warnings = append(res.Warnings, FileWarning{File: file, Err: err})
			continue
		}
		fm := FileMatches{File: file}
		for i, line := range physicalLines(text) {
			line = strings.TrimSpace(line)
			if !strings.Contains(folder.String(line), needle) {
				continue
			}
			fm.Matches = append(fm.Matches, Match{File: file, Line: i + 1, Text: truncate(line, LineWidth)})
		}
		if len(fm.Matches) > 0 {
			res.Files = append(res.Files, fm)
		}
	}
	return res
}

func (e *Engine) warn(file string, err error) {
	if e.logger == nil {
		return
	}
	kind := "io"
	if errors.Is(err, store.ErrDecode) {
		kind = "decode"
	}
	e.logger.Warn("fichier ignoré", "file", file, "kind", kind, "err", err)
}

// physicalLines découpe text en lignes. Un saut de ligne final ne crée pas
// de ligne vide supplémentaire.
func physicalLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// truncate coupe s à n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
