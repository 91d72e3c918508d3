package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds the casing variants of a project or file name used by templates.
type Names struct {
	Name         string // as given
	ClassName    string // MyApp
	PropertyName string // myApp
	ConstantName string // MY_APP
	FileName     string // my-app
}

// NewNames computes every casing variant of name.
func NewNames(name string) Names {
	return Names{
		Name:         name,
		ClassName:    ToClassName(name),
		PropertyName: ToPropertyName(name),
		ConstantName: ToConstantName(name),
		FileName:     ToFileName(name),
	}
}

// ToFileName converts a name to lower-kebab-case.
// A hyphen is inserted at each lower-or-digit to upper boundary, then spaces
// and underscores become hyphens: MyApp → my-app, my_app → my-app.
func ToFileName(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('-')
			}
		}
		switch r {
		case ' ', '_':
			b.WriteByte('-')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ToPropertyName converts a name to camelCase. Runs of '-', '_', '.' and
// whitespace are dropped and the following letter is upper-cased.
func ToPropertyName(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		if r == '-' || r == '_' || r == '.' || unicode.IsSpace(r) {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}

	out := []rune(b.String())
	if len(out) > 0 && unicode.IsUpper(out[0]) {
		out[0] = unicode.ToLower(out[0])
	}
	return string(out)
}

// ToClassName converts a name to PascalCase.
func ToClassName(s string) string {
	// Casers are stateful, so one is built per call.
	return cases.Title(language.Und, cases.NoLower).String(ToPropertyName(s))
}

// ToConstantName converts a name to SCREAMING_SNAKE_CASE.
func ToConstantName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(ToFileName(s), "-", "_"))
}
