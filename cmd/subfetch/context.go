package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/subfetch/internal/app"
	"github.com/patrickprogramme/subfetch/internal/assets"
	"github.com/patrickprogramme/subfetch/internal/bootstrap"
	"github.com/patrickprogramme/subfetch/internal/config"
	"github.com/patrickprogramme/subfetch/internal/logging"
	"github.com/patrickprogramme/subfetch/internal/ui"
)

// errOperationFailed signale une opération qui a échoué après avoir affiché son message.
var errOperationFailed = errors.New("échec de l'opération")

type globalFlags struct {
	configPath string
	directory  string
	logLevel   string
}

type commandContext struct {
	flags *globalFlags
	fs    afero.Fs
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags, fs: afero.NewOsFs()}
}

// loadConfig crée la config par défaut au premier lancement, la charge puis
// applique les flags par-dessus.
func (c *commandContext) loadConfig(logger *log.Logger) (*config.Config, error) {
	path := strings.TrimSpace(c.flags.configPath)
	if path == "" {
		path = defaultConfigPath()
	}

	created, err := bootstrap.EnsureConfigPresent(c.fs, path, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		// non bloquant : les valeurs par défaut s'appliquent
		logger.Warn("fichier de configuration non créé", "path", path, "err", err)
	} else if created {
		logger.Info("fichier de configuration par défaut créé", "path", path)
	}

	cfg, err := config.Load(c.fs, path)
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(c.flags.directory); dir != "" {
		cfg.OutputDir = filepath.Clean(dir)
	}
	if lvl := strings.TrimSpace(c.flags.logLevel); lvl != "" {
		cfg.LogLevel = strings.ToLower(lvl)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp construit l'application pour une commande ; la sortie suit celle de cmd.
func (c *commandContext) newApp(cmd *cobra.Command) (*app.App, error) {
	logger := logging.New(cmd.ErrOrStderr(), c.flags.logLevel)

	cfg, err := c.loadConfig(logger)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	logger.Debug("configuration chargée", "path", cfg.Path(), "output_dir", cfg.OutputDir)

	warnings, err := cfg.ValidateYtDlpPresence()
	if err != nil {
		logger.Warn("yt-dlp mal configuré", "err", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	out := cmd.OutOrStdout()
	return app.New(cfg, app.Deps{
		UI:     ui.NewWriter(out, cmd.ErrOrStderr(), shouldColorize(out)),
		Logger: logger,
		Fs:     c.fs,
	}), nil
}

// run exécute op sur l'application et convertit son résultat en erreur pour cobra.
func (c *commandContext) run(cmd *cobra.Command, op func(*app.App) bool) error {
	a, err := c.newApp(cmd)
	if err != nil {
		return err
	}
	if !op(a) {
		return errOperationFailed
	}
	return nil
}

// shouldColorize : couleurs seulement vers un terminal, et si NO_COLOR n'est pas défini.
func shouldColorize(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// defaultConfigPath : <UserConfigDir>/subfetch/subfetch.yaml, sinon le répertoire courant.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.DefaultFileName
	}
	return filepath.Join(dir, "subfetch", config.DefaultFileName)
}
