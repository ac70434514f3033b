package yt

import (
	"context"
	"errors"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

// Erreurs exportées. Les deux premières distinguent un outil absent ou mal
// configuré d'un téléchargement qui a échoué.
var (
	ErrUnavailable    = errors.New("yt-dlp indisponible")
	ErrDownloadFailed = errors.New("échec du téléchargement")
	ErrNoSubtitle     = errors.New("aucun sous-titre disponible")
	ErrInvalidURL     = errors.New("URL YouTube invalide")
)

// Request décrit un téléchargement : une vidéo, une langue, des formats.
type Request struct {
	URL       string
	Language  string
	Formats   []model.Format
	OutputDir string
}

// DownloadReport contient les fichiers déposés (noms seuls, dans le
// répertoire de sortie) et les avertissements émis par yt-dlp.
type DownloadReport struct {
	Files    []string
	Warnings []string
}

// runFunc exécute le binaire et retourne stdout+stderr.
type runFunc func(ctx context.Context, exe string, args ...string) ([]byte, error)

func runCombined(ctx context.Context, exe string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, exe, args...).CombinedOutput()
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe ; vide => recherche de Name dans le PATH
	Config YtDlpConfig

	logger   *log.Logger
	run      runFunc
	lookPath func(file string) (string, error)
}
