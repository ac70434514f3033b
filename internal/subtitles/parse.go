package subtitles

import (
	"strings"

	"github.com/patrickprogramme/subfetch/internal/store"
)

const (
	// timingSeparator identifie une ligne de timing "<début> --> <fin>".
	timingSeparator = " --> "
	// vttBanner est la bannière optionnelle en tête des fichiers WebVTT.
	vttBanner = "WEBVTT"
)

// Cue représente une entrée de sous-titres.
// Timestamp est la ligne de timing telle quelle (non interprétée),
// Text les lignes de texte jointes par un espace.
type Cue struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// parseState est l'état de l'entrée en cours de construction.
type parseState int

const (
	stateIdle   parseState = iota // aucune entrée en cours
	stateTiming                   // ligne de timing vue, pas encore de texte
	stateText                     // timing + au moins une ligne de texte
	stateClosed                   // bloc terminé par une ligne vide
)

// parser est la valeur accumulée pendant le parcours des lignes.
type parser struct {
	state   parseState
	pending Cue
	out     []Cue
}

// Parse transforme le texte brut d'un fichier vtt/srt en une suite ordonnée
// d'entrées. Le parcours est ligne à ligne et ne lève jamais d'erreur :
//   - lignes vides et bannière WEBVTT ignorées ;
//   - une ligne contenant " --> " ouvre une nouvelle entrée. L'entrée en cours
//     est émise si elle a du texte, sinon elle est simplement remplacée ;
//   - les lignes suivantes forment le texte (jointes par un espace) jusqu'à la
//     prochaine ligne vide ;
//   - les lignes hors entrée (index srt, identifiants vtt, NOTE...) sont perdues.
//
// En fin de fichier l'entrée en cours est émise, même sans texte.
func Parse(raw string) []Cue {
	p := parser{out: []Cue{}}
	for _, line := range strings.Split(raw, "\n") {
		p = p.next(strings.TrimSpace(line))
	}
	return p.finish()
}

// ParseBytes décode data en UTF-8 puis appelle Parse.
// Retourne store.ErrDecode si le contenu n'est pas de l'UTF-8 valide.
func ParseBytes(name string, data []byte) ([]Cue, error) {
	text, err := store.DecodeText(name, data)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// next applique une ligne (déjà trimée) à l'état courant.
func (p parser) next(line string) parser {
	switch {
	case line == "":
		if p.state == stateText {
			p.state = stateClosed
		}
	case strings.HasPrefix(line, vttBanner):
		// bannière de format, rien à faire
	case strings.Contains(line, timingSeparator):
		if p.state == stateText || p.state == stateClosed {
			p.out = append(p.out, p.pending)
		}
		p.pending = Cue{Timestamp: line}
		p.state = stateTiming
	case p.state == stateTiming:
		p.pending.Text = line
		p.state = stateText
	case p.state == stateText:
		p.pending.Text += " " + line
	default:
		// ligne orpheline : stateIdle ou stateClosed
	}
	return p
}

// finish émet l'entrée en cours s'il y en a une.
func (p parser) finish() []Cue {
	if p.state != stateIdle {
		p.out = append(p.out, p.pending)
	}
	return p.out
}
