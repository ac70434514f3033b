package yt

import (
	"context"
	"fmt"
	"strings"
)

// GetVersion exécute le binaire yt-dlp avec l'option --version et retourne sa sortie.
// Un binaire qui ne répond pas est considéré comme mal configuré (ErrUnavailable).
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	exe, err := y.executable()
	if err != nil {
		return "", err
	}
	out, err := y.run(ctx, exe, "--version")
	if err != nil {
		return "", fmt.Errorf("%w: échec exécution yt-dlp --version : %v, output: %s", ErrUnavailable, err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}
