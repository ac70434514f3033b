package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/cfg/subfetch.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.OutputDir != "downloads" || cfg.Language != "es" {
		t.Fatalf("defaults = %q/%q", cfg.OutputDir, cfg.Language)
	}
	if want := []string{"vtt", "srt", "json"}; !reflect.DeepEqual(cfg.Formats, want) {
		t.Fatalf("Formats = %v; want %v", cfg.Formats, want)
	}
	if cfg.YtDlp.ResolvedPath != "" {
		t.Fatalf("ResolvedPath = %q; want empty (PATH lookup)", cfg.YtDlp.ResolvedPath)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	yml := "output_dir: subs/\nlanguage: ' fr '\nformats: [SRT, srt, json]\nlog_level: DEBUG\nconfig_version: 1\n"
	if err := afero.WriteFile(fsys, "/cfg/subfetch.yaml", []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(fsys, "/cfg/subfetch.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.OutputDir != "subs" || cfg.Language != "fr" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if want := []string{"srt", "json"}; !reflect.DeepEqual(cfg.Formats, want) {
		t.Fatalf("Formats = %v; want %v", cfg.Formats, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "c.yaml", []byte("formats: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(fsys, "c.yaml"); err == nil {
		t.Fatalf("Load succeeded on invalid YAML")
	}
}

func TestLoadMigratesOldFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/cfg/subfetch.yaml", []byte("output_dir: subs\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(fsys, "/cfg/subfetch.yaml")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ConfigVersion != CurrentConfigVersion {
		t.Fatalf("ConfigVersion = %d", cfg.ConfigVersion)
	}

	data, err := afero.ReadFile(fsys, "/cfg/subfetch.yaml")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "config_version: 1") || !strings.Contains(string(data), "language: es") {
		t.Fatalf("migrated file:\n%s", data)
	}

	backups, err := afero.Glob(fsys, "/cfg/subfetch.yaml.bak.*")
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v, %v; want one", backups, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown format", func(c *Config) { c.Formats = []string{"ass"} }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, false},
		{"several languages", func(c *Config) { c.Language = "es,fr" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("Validate = %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate = %v; want ErrInvalid", err)
			}
		})
	}
}

func TestResolveYtDlpPath(t *testing.T) {
	exe := "yt-dlp"
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty path uses PATH", "", ""},
		{"directory gets the executable joined", "/opt/tools", filepath.Join("/opt/tools", exe)},
		{"full path kept", "/opt/tools/" + exe, filepath.Clean("/opt/tools/" + exe)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.YtDlp.Path = tc.path
			cfg.ResolveYtDlpPath()
			if cfg.YtDlp.ResolvedPath != tc.want {
				t.Fatalf("ResolvedPath = %q; want %q", cfg.YtDlp.ResolvedPath, tc.want)
			}
		})
	}
}
