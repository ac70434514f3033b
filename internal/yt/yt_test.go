package yt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/patrickprogramme/subfetch/pkg/model"
)

func quietLogger() *log.Logger {
	l := log.New(&strings.Builder{})
	l.SetLevel(log.FatalLevel)
	return l
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://youtu.be/abc123", true},
		{"https://m.youtube.com/watch?v=abc123", true},
		{"HTTPS://WWW.YOUTUBE.COM/watch?v=abc123", true},
		{"https://vimeo.com/123", false},
		{"", false},
	}
	for _, tc := range tests {
		err := ValidateURL(tc.url)
		if tc.ok && err != nil {
			t.Errorf("ValidateURL(%q) = %v; want nil", tc.url, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidURL) {
			t.Errorf("ValidateURL(%q) = %v; want ErrInvalidURL", tc.url, err)
		}
	}
}

func TestBuildArgs(t *testing.T) {
	req := Request{URL: "https://youtu.be/abc123", Language: "es", OutputDir: "downloads"}

	t.Run("defaults", func(t *testing.T) {
		got := NewYtDlpConfig(false, false).BuildArgs(req, model.FormatSRT)
		want := []string{
			"--no-config", "--skip-download", "--write-subs",
			"--sub-langs", "es",
			"--sub-format", "srt/best",
			"--convert-subs", "srt",
			"-o", filepath.Join("downloads", "%(title)s.%(ext)s"),
			"--no-warnings", "--no-progress", "--no-update",
			"https://youtu.be/abc123",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("BuildArgs =\n%v\nwant\n%v", got, want)
		}
	})

	t.Run("warnings shown and auto subs", func(t *testing.T) {
		got := NewYtDlpConfig(true, true).BuildArgs(req, model.FormatVTT)
		joined := strings.Join(got, " ")
		if strings.Contains(joined, "--no-warnings") {
			t.Errorf("unexpected --no-warnings in %v", got)
		}
		if !strings.Contains(joined, "--write-auto-subs") {
			t.Errorf("missing --write-auto-subs in %v", got)
		}
		if got[len(got)-1] != req.URL {
			t.Errorf("url must be the last argument, got %v", got)
		}
	})
}

func TestCheckBinary(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name   string
		path   string
		lookup error
		ok     bool
	}{
		{"configured path exists", exe, nil, true},
		{"configured path missing", filepath.Join(dir, "absent"), nil, false},
		{"configured path is a directory", dir, nil, false},
		{"found in PATH", "", nil, true},
		{"absent from PATH", "", errors.New("not found"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y := NewYtDlp("yt-dlp", tc.path, *NewYtDlpConfig(false, false), quietLogger())
			y.lookPath = func(string) (string, error) {
				if tc.lookup != nil {
					return "", tc.lookup
				}
				return "/usr/bin/yt-dlp", nil
			}
			err := y.CheckBinary()
			if tc.ok && err != nil {
				t.Fatalf("CheckBinary = %v; want nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrUnavailable) {
				t.Fatalf("CheckBinary = %v; want ErrUnavailable", err)
			}
		})
	}
}

// fakeYtDlp construit un client dont l'exécution est simulée par run.
func fakeYtDlp(run runFunc) *YtDlp {
	y := NewYtDlp("yt-dlp", "", *NewYtDlpConfig(false, false), quietLogger())
	y.lookPath = func(string) (string, error) { return "/usr/bin/yt-dlp", nil }
	y.run = run
	return y
}

func TestDownloadSubtitles(t *testing.T) {
	var calls [][]string
	y := fakeYtDlp(func(_ context.Context, _ string, args ...string) ([]byte, error) {
		calls = append(calls, args)
		format := ""
		for i, a := range args {
			if a == "--convert-subs" {
				format = args[i+1]
			}
		}
		out := "[youtube] abc123: Downloading webpage\n" +
			"WARNING: [youtube] some formats are missing\n" +
			"[info] Writing video subtitles to: downloads/Ma vidéo.es.vtt\n"
		if format == "srt" {
			out += "[SubtitlesConvertor] Converting subtitles\n"
		}
		return []byte(out), nil
	})

	req := Request{
		URL:       "https://youtu.be/abc123",
		Language:  "es",
		Formats:   []model.Format{model.FormatVTT, model.FormatSRT, model.FormatJSON},
		OutputDir: "downloads",
	}
	report, err := y.DownloadSubtitles(context.Background(), req)
	if err != nil {
		t.Fatalf("DownloadSubtitles error: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("yt-dlp ran %d times; want 2 (json is local)", len(calls))
	}
	if want := []string{"Ma vidéo.es.vtt", "Ma vidéo.es.srt"}; !reflect.DeepEqual(report.Files, want) {
		t.Fatalf("Files = %v; want %v", report.Files, want)
	}
	if len(report.Warnings) != 2 || report.Warnings[0] != "[youtube] some formats are missing" {
		t.Fatalf("Warnings = %#v", report.Warnings)
	}
}

func TestDownloadSubtitlesFailures(t *testing.T) {
	req := Request{URL: "https://youtu.be/abc123", Language: "xx", Formats: []model.Format{model.FormatVTT}, OutputDir: "d"}

	t.Run("no subtitle written", func(t *testing.T) {
		y := fakeYtDlp(func(context.Context, string, ...string) ([]byte, error) {
			return []byte("[info] There are no subtitles for the requested languages\n"), nil
		})
		_, err := y.DownloadSubtitles(context.Background(), req)
		if !errors.Is(err, ErrDownloadFailed) || !errors.Is(err, ErrNoSubtitle) {
			t.Fatalf("err = %v; want ErrDownloadFailed and ErrNoSubtitle", err)
		}
	})

	t.Run("process error", func(t *testing.T) {
		y := fakeYtDlp(func(context.Context, string, ...string) ([]byte, error) {
			return []byte("ERROR: Video unavailable"), errors.New("exit status 1")
		})
		_, err := y.DownloadSubtitles(context.Background(), req)
		if !errors.Is(err, ErrDownloadFailed) {
			t.Fatalf("err = %v; want ErrDownloadFailed", err)
		}
		if !strings.Contains(err.Error(), "Video unavailable") {
			t.Fatalf("err = %v; want yt-dlp output in message", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		y := fakeYtDlp(func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, ctx.Err()
		})
		_, err := y.DownloadSubtitles(ctx, req)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v; want context.Canceled", err)
		}
	})

	t.Run("binary unavailable", func(t *testing.T) {
		y := fakeYtDlp(nil)
		y.lookPath = func(string) (string, error) { return "", errors.New("not found") }
		_, err := y.DownloadSubtitles(context.Background(), req)
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("err = %v; want ErrUnavailable", err)
		}
	})
}

func TestGetVersion(t *testing.T) {
	y := fakeYtDlp(func(_ context.Context, _ string, args ...string) ([]byte, error) {
		if len(args) != 1 || args[0] != "--version" {
			t.Fatalf("args = %v", args)
		}
		return []byte("2025.09.26\n"), nil
	})
	v, err := y.GetVersion(context.Background())
	if err != nil || v != "2025.09.26" {
		t.Fatalf("GetVersion = %q, %v", v, err)
	}

	y.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("boom")
	}
	if _, err := y.GetVersion(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v; want ErrUnavailable", err)
	}
}
