package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmpty signale un presse-papier vide (ou ne contenant que des blancs).
var ErrEmpty = errors.New("presse-papier vide")

// ReadAll lit le contenu texte du presse-papier, sans les blancs autour.
func ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("lecture du presse-papier : %w", err)
	}
	return normalize(text)
}

// normalize garde la première ligne non vide : une URL copiée depuis un
// navigateur est parfois suivie d'un saut de ligne.
func normalize(text string) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", ErrEmpty
}
