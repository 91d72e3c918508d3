package workspace

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// KeyOrder records the key order of every object in a JSON document, by
// path. Encoding with it keeps keys that were in the file where they were.
type KeyOrder map[string][]string

// ReadKeyOrder scans data for object key order.
func ReadKeyOrder(data []byte) KeyOrder {
	order := KeyOrder{}
	var walk func(path string, r gjson.Result)
	walk = func(path string, r gjson.Result) {
		switch {
		case r.IsObject():
			r.ForEach(func(k, v gjson.Result) bool {
				order[path] = append(order[path], k.String())
				walk(childPath(path, k.String()), v)
				return true
			})
		case r.IsArray():
			for i, v := range r.Array() {
				walk(childPath(path, strconv.Itoa(i)), v)
			}
		}
	}
	walk("", gjson.ParseBytes(data))
	return order
}

func childPath(path, key string) string {
	return path + "\x00" + key
}

// keys lists obj's keys: those in known first, in that order, then the
// rest sorted.
func keys(obj map[string]any, known []string) []string {
	out := make([]string, 0, len(obj))
	seen := make(map[string]bool, len(obj))
	for _, k := range known {
		if _, ok := obj[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}

	var rest []string
	for k := range obj {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// EncodeOrdered renders the document like Encode, keeping the key order
// recorded in order. New keys follow the known ones alphabetically.
func (d Document) EncodeOrdered(order KeyOrder) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, map[string]any(d), "", "", order); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, path, indent string, order KeyOrder) error {
	switch val := v.(type) {
	case Document:
		return encodeObject(buf, val, path, indent, order)
	case map[string]any:
		return encodeObject(buf, val, path, indent, order)
	case []any:
		if val == nil {
			buf.WriteString("null")
			return nil
		}
		if len(val) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range val {
			buf.WriteString(indent + "  ")
			if err := encodeValue(buf, item, childPath(path, strconv.Itoa(i)), indent+"  ", order); err != nil {
				return err
			}
			if i < len(val)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(indent + "]")
		return nil
	default:
		return encodeLeaf(buf, val, indent)
	}
}

func encodeObject(buf *bytes.Buffer, obj map[string]any, path, indent string, order KeyOrder) error {
	if obj == nil {
		buf.WriteString("null")
		return nil
	}
	if len(obj) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	ks := keys(obj, order[path])
	for i, k := range ks {
		buf.WriteString(indent + "  ")
		if err := encodeLeaf(buf, k, ""); err != nil {
			return err
		}
		buf.WriteString(": ")
		if err := encodeValue(buf, obj[k], childPath(path, k), indent+"  ", order); err != nil {
			return err
		}
		if i < len(ks)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent + "}")
	return nil
}

// encodeLeaf writes scalars and typed values (structs, typed slices) with
// encoding/json, indented to continue at the current depth.
func encodeLeaf(buf *bytes.Buffer, v any, indent string) error {
	var leaf bytes.Buffer
	enc := json.NewEncoder(&leaf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(indent, "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(leaf.Bytes(), []byte("\n")))
	return nil
}
