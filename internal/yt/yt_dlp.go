package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

const (
	subtitleLinePrefix = "Writing video subtitles to:"
	warningPrefix      = "WARNING:"
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
// (ou vide pour chercher Name dans le PATH). logger peut être nil.
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig, logger *log.Logger) *YtDlp {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &YtDlp{
		Name:     name,
		Path:     resolvedPath,
		Config:   cfg,
		logger:   logger,
		run:      runCombined,
		lookPath: exec.LookPath,
	}
}

// CheckBinary vérifie que le binaire existe et n'est pas un répertoire.
// Toute erreur enveloppe ErrUnavailable.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("%w: yt-dlp non initialisé", ErrUnavailable)
	}
	_, err := y.executable()
	return err
}

// executable résout le binaire : chemin configuré sinon recherche dans le PATH.
func (y *YtDlp) executable() (string, error) {
	if y.Path != "" {
		info, err := os.Stat(y.Path)
		if err != nil {
			return "", fmt.Errorf("%w: introuvable à l'emplacement spécifié (%s) : %v", ErrUnavailable, y.Path, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: le chemin spécifié est un répertoire (%s)", ErrUnavailable, y.Path)
		}
		return y.Path, nil
	}
	lookPath := y.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	p, err := lookPath(y.Name)
	if err != nil {
		return "", fmt.Errorf("%w: %s absent du PATH : %v", ErrUnavailable, y.Name, err)
	}
	return p, nil
}

// DownloadSubtitles lance yt-dlp une fois par format de sous-titres demandé
// (json est ignoré : il est produit par conversion locale).
// Retourne ErrDownloadFailed si une exécution échoue ou si aucun fichier n'a
// été déposé.
func (y *YtDlp) DownloadSubtitles(ctx context.Context, req Request) (*DownloadReport, error) {
	exe, err := y.executable()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		y.logger.Debug("yt-dlp terminé", "elapsed", time.Since(start))
	}()

	report := &DownloadReport{}
	for _, f := range req.Formats {
		if !f.IsSubtitle() {
			continue
		}
		args := y.Config.BuildArgs(req, f)
		y.logger.Debug("exécution yt-dlp", "exe", exe, "args", strings.Join(args, " "))

		out, err := y.run(ctx, exe, args...)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, fmt.Errorf("%w: %w", ErrDownloadFailed, ctxErr)
			}
			return report, fmt.Errorf("%w: yt-dlp (%s): %v, output: %s", ErrDownloadFailed, f, err, strings.TrimSpace(string(out)))
		}
		files, warnings := parseOutput(out, f)
		report.Files = append(report.Files, files...)
		report.Warnings = append(report.Warnings, warnings...)
	}

	if len(report.Files) == 0 {
		return report, fmt.Errorf("%w: %w (langue %s)", ErrDownloadFailed, ErrNoSubtitle, req.Language)
	}
	return report, nil
}

// parseOutput extrait de la sortie de yt-dlp les fichiers de sous-titres écrits
// (extension remplacée par le format converti) et les avertissements.
func parseOutput(out []byte, format model.Format) (files []string, warnings []string) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, warningPrefix) {
			warnings = append(warnings, strings.TrimSpace(strings.TrimPrefix(line, warningPrefix)))
			continue
		}
		i := strings.Index(line, subtitleLinePrefix)
		if i < 0 {
			continue
		}
		path := strings.TrimSpace(line[i+len(subtitleLinePrefix):])
		base := filepath.Base(path)
		base = strings.TrimSuffix(base, filepath.Ext(base)) + format.Extension()
		files = append(files, base)
	}
	return files, warnings
}
