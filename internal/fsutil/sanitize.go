package fsutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// limite de longueur d'un nom de fichier
const maxNameLen = 255

// ErrInvalidName signale un nom de fichier qui sortirait du répertoire de sortie
// ou contiendrait des caractères interdits.
var ErrInvalidName = errors.New("nom de fichier invalide")

// invalidFileRunes définit les caractères interdits dans les noms de fichiers :
// séparateurs de chemin et caractères de contrôle (\x00-\x1F).
// Les titres YouTube contiennent souvent "?" ou "|" : on les accepte.
var invalidFileRunes = regexp.MustCompile(`[/\\\x00-\x1F]`)

// ValidateName vérifie qu'un nom désigne un fichier directement dans le
// répertoire de sortie : pas de séparateur, pas de "." ni "..", pas de
// caractère de contrôle. Les fichiers sont adressés par leur nom uniquement.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: nom vide", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if invalidFileRunes.MatchString(name) {
		return fmt.Errorf("%w: %q contient un caractère interdit", ErrInvalidName, name)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: %q dépasse %d octets", ErrInvalidName, name, maxNameLen)
	}
	return nil
}
