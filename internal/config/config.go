package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

const CurrentConfigVersion = 1

// DefaultFileName est le nom du fichier de configuration.
const DefaultFileName = "subfetch.yaml"

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Sous-titres
	Language string   `yaml:"language"`
	Formats  []string `yaml:"formats"`
	AutoSubs bool     `yaml:"auto_subs"`

	// Journalisation
	LogLevel string `yaml:"log_level"`

	// yt-dlp
	YtDlp struct {
		Name         string `yaml:"name"`
		Path         string `yaml:"path"`
		ShowWarnings bool   `yaml:"show_warnings"`

		// ResolvedPath contient le chemin effectif vers l'exécutable (vide => PATH)
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
	fs             afero.Fs
}

// Default retourne la configuration par défaut
// (utilisée telle quelle si aucun fichier n'existe).
func Default() *Config {
	c := &Config{}

	// Chemins
	c.OutputDir = "downloads"

	// Sous-titres
	c.Language = "es"
	c.Formats = formatStrings(model.DefaultFormats)
	c.AutoSubs = false

	c.LogLevel = "info"

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false

	c.ConfigVersion = CurrentConfigVersion

	c.fs = afero.NewOsFs()
	c.normalizeConfig()
	return c
}

// Load lit la config depuis path ; si le fichier n'existe pas, les valeurs par
// défaut sont retournées sans erreur.
func Load(fsys afero.Fs, path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	cfg := Default()
	cfg.fs = fsys
	cfg.configFilePath = path

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// remettre la version à zéro : un fichier sans config_version est un fichier v0
	cfg.ConfigVersion = 0

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	return cfg, nil
}

// Path retourne le chemin du fichier chargé.
func (c *Config) Path() string { return c.configFilePath }

// FormatList retourne les formats configurés, typés.
func (c *Config) FormatList() ([]model.Format, error) {
	return model.ParseFormats(c.Formats)
}

func (c *Config) normalizeConfig() {
	// Nettoyage des chemins
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "downloads"
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = "es"
	}

	// formats : minuscules, sans doublon ; les inconnus sont laissés à Validate
	seen := make(map[string]bool, len(c.Formats))
	formats := make([]string, 0, len(c.Formats))
	for _, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = formatStrings(model.DefaultFormats)
	}
	c.Formats = formats

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	// Normaliser le nom et ajouter .exe sur Windows si nécessaire
	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// chemin vide -> recherche de Name dans le PATH au moment de l'exécution
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}

func formatStrings(in []model.Format) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[i] = f.String()
	}
	return out
}
