package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/patrickprogramme/subfetch/internal/search"
	"github.com/patrickprogramme/subfetch/internal/store"
)

type terminalUI struct {
	out    io.Writer
	errOut io.Writer

	info    *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	header  *color.Color
}

// NewTerminal écrit sur stdout/stderr ; la couleur suit la détection de fatih/color.
func NewTerminal() Interface {
	return NewWriter(os.Stdout, os.Stderr, !color.NoColor)
}

// NewWriter écrit sur out (et errOut pour les erreurs).
func NewWriter(out, errOut io.Writer, colored bool) Interface {
	t := &terminalUI{
		out:     out,
		errOut:  errOut,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
		header:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{t.info, t.success, t.warning, t.failure, t.header} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *terminalUI) PrintInfo(s string) {
	t.info.Fprintln(t.out, s)
}

func (t *terminalUI) PrintSuccess(s string) {
	t.success.Fprintln(t.out, "✅ "+s)
}

func (t *terminalUI) PrintWarning(s string) {
	t.warning.Fprintln(t.out, "⚠️  "+s)
}

func (t *terminalUI) PrintError(s string) {
	t.failure.Fprintln(t.errOut, "❌ "+s)
}

func (t *terminalUI) PrintFiles(dir string, files []store.FileEntry) {
	t.header.Fprintf(t.out, "\n📋 Fichiers dans %s :\n", dir)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Nom", "Taille"})
	for i, f := range files {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), f.Name, humanize.Bytes(uint64(max(f.Size, 0)))})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(t.out, tw.Render())
}

func (t *terminalUI) PrintResult(res search.Result) {
	t.header.Fprintf(t.out, "\n🔍 Recherche : '%s'\n", res.Term)
	for _, fm := range res.Files {
		t.header.Fprintf(t.out, "\n📄 %s : %d correspondance(s)\n", fm.File, fm.Total())
		for _, m := range fm.Shown() {
			fmt.Fprintf(t.out, "   Ligne %d : %s\n", m.Line, m.Text)
		}
		if n := fm.Remaining(); n > 0 {
			fmt.Fprintf(t.out, "   ... et %d de plus\n", n)
		}
	}
	for _, w := range res.Warnings {
		t.PrintWarning(fmt.Sprintf("Erreur de lecture %s : %v", w.File, w.Err))
	}
}
