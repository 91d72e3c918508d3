package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simonhull/kestrel/internal/tree"
)

// Document is a decoded JSON object. Numbers decode as json.Number so
// values the generator does not touch are written back verbatim.
type Document map[string]any

// Decode parses a JSON object.
func Decode(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("expected a JSON object")
	}
	return doc, nil
}

// Encode renders the document with two-space indentation and a trailing
// newline. Keys are sorted.
func (d Document) Encode() ([]byte, error) {
	return d.EncodeOrdered(nil)
}

// Object returns the object at key, creating it (or replacing a non-object
// value) when needed.
func (d Document) Object(key string) Document {
	if obj, ok := asObject(d[key]); ok {
		d[key] = obj
		return obj
	}
	obj := Document{}
	d[key] = obj
	return obj
}

// asObject accepts both decoded (map[string]any) and constructed objects.
func asObject(v any) (Document, bool) {
	switch o := v.(type) {
	case Document:
		return o, true
	case map[string]any:
		return Document(o), true
	default:
		return nil, false
	}
}

// Lookup returns the object at key without creating it.
func (d Document) Lookup(key string) (Document, bool) {
	return asObject(d[key])
}

// String returns the string at key, or "".
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Update reads the JSON file at path from t, applies fn and stages the
// result. Keys already in the file keep their order.
func Update(t *tree.Tree, path string, fn func(Document) error) error {
	data, err := t.Read(path)
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := fn(doc); err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	out, err := doc.EncodeOrdered(ReadKeyOrder(data))
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return t.Overwrite(path, out)
}

// toDocument converts a typed value into its generic JSON form.
func toDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// fromDocument converts a generic JSON value into a typed one.
func fromDocument(v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(out)
}
