package yt

import (
	"fmt"
	"strings"
)

// allowedHosts est la liste fixe des domaines vidéo acceptés.
var allowedHosts = []string{
	"youtube.com",
	"youtu.be",
	"m.youtube.com",
}

// IsYouTubeURL est une vérification locale, sans réseau : l'URL doit contenir
// l'un des domaines autorisés.
func IsYouTubeURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	for _, host := range allowedHosts {
		if strings.Contains(s, host) {
			return true
		}
	}
	return false
}

// ValidateURL retourne ErrInvalidURL si s n'est pas une URL YouTube.
func ValidateURL(s string) error {
	if !IsYouTubeURL(s) {
		return fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	return nil
}
