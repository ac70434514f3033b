package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/patrickprogramme/subfetch/internal/search"
	"github.com/patrickprogramme/subfetch/internal/store"
)

func newTestUI() (Interface, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWriter(&out, &errOut, false), &out, &errOut
}

func TestStatusLines(t *testing.T) {
	u, out, errOut := newTestUI()
	u.PrintSuccess("Converti en : a.json")
	u.PrintError("Fichier introuvable : b.vtt")

	if got := out.String(); got != "✅ Converti en : a.json\n" {
		t.Fatalf("stdout = %q", got)
	}
	if got := errOut.String(); got != "❌ Fichier introuvable : b.vtt\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestPrintFiles(t *testing.T) {
	u, out, _ := newTestUI()
	u.PrintFiles("downloads", []store.FileEntry{
		{Name: "Ma vidéo.es.vtt", Size: 2048},
		{Name: "Ma vidéo.es.srt", Size: 10},
	})
	s := out.String()
	for _, want := range []string{"downloads", "Ma vidéo.es.vtt", "2.0 kB", "10 B", "│ 2 │"} {
		if !strings.Contains(s, want) {
			t.Errorf("listing missing %q:\n%s", want, s)
		}
	}
}

func TestPrintResultCapsDisplay(t *testing.T) {
	fm := search.FileMatches{File: "seven.vtt"}
	for i := 1; i <= 7; i++ {
		fm.Matches = append(fm.Matches, search.Match{File: "seven.vtt", Line: i * 2, Text: fmt.Sprintf("match %d", i)})
	}
	res := search.Result{
		Term:     "match",
		Searched: 2,
		Files:    []search.FileMatches{fm},
		Warnings: []search.FileWarning{{File: "bad.srt", Err: errors.New("décodage")}},
	}

	u, out, _ := newTestUI()
	u.PrintResult(res)
	s := out.String()

	for _, want := range []string{"'match'", "seven.vtt : 7 correspondance(s)", "Ligne 10 : match 5", "... et 2 de plus", "bad.srt"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "match 6") {
		t.Errorf("sixth match should not be displayed:\n%s", s)
	}
}
