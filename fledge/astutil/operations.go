package astutil

import "context"

// AddGlobal inserts text after the last top-level import, or at the top of
// the file when there are none.
func AddGlobal(ctx context.Context, content []byte, text string) ([]byte, error) {
	src, err := Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	m := NewModifier(src)
	m.Insert(src.AfterLastImport(), text)
	return m.Apply(ctx)
}

// InsertBeforeClosingTag adds an import after the last import and markup
// before the closing tag of the outermost JSX element. ok is false, and
// content is returned unchanged, when the file has no such element.
func InsertBeforeClosingTag(ctx context.Context, content []byte, importText, markup string) (out []byte, ok bool, err error) {
	src, err := Parse(ctx, content)
	if err != nil {
		return nil, false, err
	}

	pos, found := src.ClosingTagStart()
	if !found {
		return content, false, nil
	}

	m := NewModifier(src)
	m.Insert(src.AfterLastImport(), importText)
	m.Insert(pos, markup)

	out, err = m.Apply(ctx)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
