package model

import (
	"fmt"
	"strings"
)

// constantes pour les formats de fichiers
type Format string

const (
	FormatVTT  Format = "vtt"
	FormatSRT  Format = "srt"
	FormatJSON Format = "json"
)

// DefaultFormats sont les formats demandés quand rien n'est précisé.
var DefaultFormats = []Format{FormatVTT, FormatSRT, FormatJSON}

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vtt":
		return FormatVTT, nil
	case "srt":
		return FormatSRT, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// ParseFormats convertit une liste de formats, sans doublon et dans l'ordre.
// Une liste vide donne DefaultFormats.
func ParseFormats(in []string) ([]Format, error) {
	if len(in) == 0 {
		return append([]Format(nil), DefaultFormats...), nil
	}
	out := make([]Format, 0, len(in))
	seen := make(map[Format]struct{}, len(in))
	for _, s := range in {
		f, err := ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}

// IsSubtitle indique un format de sous-titres fourni par le téléchargeur.
// json est produit localement par conversion.
func (f Format) IsSubtitle() bool {
	return f == FormatSRT || f == FormatVTT
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}

// FormatOfFile retourne le format déduit de l'extension de name.
func FormatOfFile(name string) (Format, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	f, err := ParseFormat(name[i+1:])
	if err != nil {
		return "", false
	}
	return f, true
}
