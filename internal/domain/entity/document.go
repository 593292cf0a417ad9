// Package entity contains the content objects served by the storefront,
// each stored as a schemaless document in its own collection.
package entity

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Document is a schemaless record as it is kept in a collection.
type Document map[string]any

// FieldID is the document key holding the entity identifier.
const FieldID = "id"

// NewID returns a fresh globally unique entity identifier.
func NewID() string {
	return uuid.NewString()
}

// ToDocument converts a JSON-tagged value into a Document.
// Fields omitted by the value's JSON encoding are absent from the result.
func ToDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal document")
	}

	doc := Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal document")
	}

	return doc, nil
}

// Decode overlays the document onto out. Keys missing from the document
// leave the corresponding fields of out untouched.
func (d Document) Decode(out any) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode document")
}

// ID returns the identifier stored in the document, or "" when absent.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)

	return id
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}

	clone := Document{}
	if err := d.Decode(&clone); err != nil {
		// Documents built from JSON always re-encode; fall back to a shallow copy otherwise.
		for k, v := range d {
			clone[k] = v
		}
	}

	return clone
}
