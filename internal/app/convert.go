package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/subfetch/internal/subtitles"
	"github.com/patrickprogramme/subfetch/pkg/model"
)

// Convert transforme le fichier de sous-titres input (dans le répertoire de
// sortie) en document JSON. output vide => même nom, extension .json.
func (a *App) Convert(input, output string) bool {
	if !a.ensureOutputDir() {
		return false
	}
	out, err := a.convert(input, output)
	if err != nil {
		return a.fail(err)
	}
	a.ui.PrintSuccess(fmt.Sprintf("Converti en : %s", out))
	return true
}

func (a *App) convert(input, output string) (string, error) {
	if output == "" {
		output = DefaultOutputName(input)
	}
	text, err := a.store.ReadText(input)
	if err != nil {
		return "", err
	}
	cues := subtitles.Parse(text)
	a.log.Debug("sous-titres analysés", "file", input, "cues", len(cues))
	if err := subtitles.Write(a.store, output, subtitles.ToDocument(cues)); err != nil {
		return "", err
	}
	return output, nil
}

// DefaultOutputName retourne le nom du document JSON associé à input.
func DefaultOutputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + model.FormatJSON.Extension()
}
