package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/patrickprogramme/subfetch/internal/bootstrap"
	"github.com/patrickprogramme/subfetch/internal/clipboard"
	"github.com/patrickprogramme/subfetch/internal/config"
	"github.com/patrickprogramme/subfetch/internal/store"
	"github.com/patrickprogramme/subfetch/internal/ui"
	"github.com/patrickprogramme/subfetch/internal/yt"
)

// FetcherFactory initialise le téléchargeur (binaire vérifié) et retourne sa version.
type FetcherFactory func(ctx context.Context) (yt.Interface, string, error)

// Deps regroupe les dépendances injectables ; les champs nil prennent une
// valeur par défaut (terminal, disque, yt-dlp, presse-papier système).
type Deps struct {
	UI            ui.Interface
	Logger        *log.Logger
	Fs            afero.Fs
	NewFetcher    FetcherFactory
	ReadClipboard func() (string, error)
}

// App orchestre les différentes dépendances (UI, YtDlp, FS...).
// Chaque opération retourne true en cas de succès ; toute erreur est
// convertie en message pour l'utilisateur.
type App struct {
	cfg           *config.Config
	ui            ui.Interface
	log           *log.Logger
	store         *store.DirStore
	newFetcher    FetcherFactory
	readClipboard func() (string, error)
}

// New construit l'application à partir de la config.
// Pour les tests, on préférera injecter des implémentations factices via deps.
func New(cfg *config.Config, deps Deps) *App {
	a := &App{
		cfg:           cfg,
		ui:            deps.UI,
		log:           deps.Logger,
		newFetcher:    deps.NewFetcher,
		readClipboard: deps.ReadClipboard,
	}
	if a.ui == nil {
		a.ui = ui.NewTerminal()
	}
	if a.log == nil {
		a.log = log.New(os.Stderr)
	}
	fsys := deps.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if a.newFetcher == nil {
		a.newFetcher = func(ctx context.Context) (yt.Interface, string, error) {
			return yt.InitYtDlp(ctx, a.cfg, a.log)
		}
	}
	if a.readClipboard == nil {
		a.readClipboard = clipboard.ReadAll
	}
	a.store = store.New(fsys, cfg.OutputDir)
	return a
}

// Store retourne l'accès au répertoire de sortie.
func (a *App) Store() store.Store { return a.store }

// ensureOutputDir crée le répertoire de sortie au besoin ; appelé en tête de
// chaque opération.
func (a *App) ensureOutputDir() bool {
	created, err := bootstrap.EnsureOutputDir(a.store.Fs(), a.store.Dir())
	if err != nil {
		a.fail(err)
		return false
	}
	if created {
		a.log.Debug("répertoire de sortie créé", "dir", a.store.Dir())
	}
	return true
}

// fail affiche le message correspondant à err et retourne toujours false.
func (a *App) fail(err error) bool {
	a.log.Debug("échec", "err", err)
	a.ui.PrintError(describe(err))
	return false
}

// describe traduit une erreur en message destiné à l'utilisateur.
func describe(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "opération annulée"
	case errors.Is(err, yt.ErrInvalidURL):
		return "URL YouTube invalide"
	case errors.Is(err, yt.ErrUnavailable):
		return fmt.Sprintf("yt-dlp n'est pas installé correctement (%v)\n   Installez-le : https://github.com/yt-dlp/yt-dlp#installation", err)
	case errors.Is(err, yt.ErrNoSubtitle):
		return fmt.Sprintf("Aucun sous-titre disponible : %v", err)
	case errors.Is(err, yt.ErrDownloadFailed):
		return fmt.Sprintf("Erreur : %v", err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Sprintf("Fichier introuvable : %v", err)
	case errors.Is(err, store.ErrDecode):
		return fmt.Sprintf("Fichier illisible : %v", err)
	case errors.Is(err, store.ErrWrite):
		return fmt.Sprintf("Écriture impossible : %v", err)
	case errors.Is(err, bootstrap.ErrNotDirectory):
		return fmt.Sprintf("Répertoire de sortie invalide : %v", err)
	default:
		return fmt.Sprintf("Erreur : %v", err)
	}
}

// absDir retourne le chemin absolu du répertoire de sortie pour l'affichage.
func (a *App) absDir() string {
	if abs, err := filepath.Abs(a.store.Dir()); err == nil {
		return abs
	}
	return a.store.Dir()
}
