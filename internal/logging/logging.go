// Package logging construit le journal de diagnostic (stderr).
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var prefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93C5FD"))

// New retourne un logger préfixé "subfetch", sans horodatage.
// Un niveau inconnu ou vide retombe sur info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "subfetch",
		ReportTimestamp: false,
		Level:           ParseLevel(level),
	})
	styles := log.DefaultStyles()
	styles.Prefix = prefixStyle
	logger.SetStyles(styles)
	return logger
}

// ParseLevel convertit un niveau textuel ; info par défaut.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
