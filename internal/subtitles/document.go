package subtitles

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/patrickprogramme/subfetch/internal/store"
)

// Document est l'export structuré : un tableau d'objets {timestamp, text}
// dans l'ordre du fichier source.
type Document []Cue

// ToDocument construit le document. Une suite vide donne un tableau vide,
// jamais nil (sérialisé "[]" et non "null").
func ToDocument(cues []Cue) Document {
	doc := make(Document, 0, len(cues))
	return append(doc, cues...)
}

// Encode retourne le document en JSON indenté (2 espaces), UTF-8, sans
// échappement des caractères non ASCII ni des balises.
func (d Document) Encode() ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encodage json: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode relit un document produit par Encode.
func Decode(data []byte) (Document, error) {
	doc := Document{}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("décodage json: %w", err)
	}
	return doc, nil
}

// Write encode le document et l'écrit sous name via w.
// Les erreurs d'écriture enveloppent store.ErrWrite ; le répertoire parent
// n'est jamais créé.
func Write(w store.Writer, name string, doc Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrWrite, err)
	}
	return w.Write(name, data)
}
