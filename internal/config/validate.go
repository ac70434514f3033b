package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

// ErrInvalid est retournée par Validate.
var ErrInvalid = errors.New("configuration invalide")

// Validate vérifie les valeurs qui ne peuvent pas être corrigées par normalisation.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config nil", ErrInvalid)
	}
	var errs []error
	if _, err := model.ParseFormats(c.Formats); err != nil {
		errs = append(errs, fmt.Errorf("formats : %w", err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q inconnu", c.LogLevel))
	}
	if strings.ContainsAny(c.Language, " ,/") {
		errs = append(errs, fmt.Errorf("language %q : un seul code de langue attendu", c.Language))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ValidateYtDlpPresence vérifie de manière statique que si un ResolvedPath est défini,
// le fichier existe et que le répertoire parent est accessible.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateYtDlpPresence() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	// assure que le resolved path est calculé
	c.ResolveYtDlpPath()

	p := strings.TrimSpace(c.YtDlp.ResolvedPath)
	if p == "" {
		// pas de chemin configuré : la recherche dans le PATH se fera à l'exécution
		return nil, nil
	}

	parent := filepath.Dir(p)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du chemin yt-dlp n'existe pas : %s", parent))
			return warnings, nil
		}
		return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du chemin yt-dlp n'est pas un répertoire : %s", parent)
	}

	info, serr := os.Stat(p)
	if serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("yt-dlp introuvable à l'emplacement configuré : %s", p))
			return warnings, nil
		}
		return warnings, fmt.Errorf("erreur lors du test du fichier %s : %w", p, serr)
	}
	if info.IsDir() {
		return warnings, fmt.Errorf("le chemin configuré pour yt-dlp est un répertoire : %s", p)
	}
	return warnings, nil
}
