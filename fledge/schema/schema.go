package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Schema is a compiled JSON Schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document.
func Compile(name string, data []byte) (*Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", name, err)
	}
	compiled, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}

	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error. For embedded schemas.
func MustCompile(name string, data []byte) *Schema {
	s, err := Compile(name, data)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a JSON document. Schema violations are returned as
// ValidationErrors; malformed JSON is returned as a plain error.
func (s *Schema) Validate(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	err = s.compiled.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating against %s: %w", s.name, err)
	}

	issues := collect(ve, nil)
	if len(issues) == 0 {
		issues = append(issues, ValidationError{Field: "/", Message: ve.Error()})
	}
	return issues
}

// collect walks the error tree and keeps leaf errors that name a keyword.
func collect(ve *jsonschema.ValidationError, out ValidationErrors) ValidationErrors {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			out = collect(cause, out)
		}
		return out
	}

	if ve.ErrorKind == nil {
		return out
	}
	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return out
	}
	keyword := kw[len(kw)-1]
	if keyword == "allOf" || keyword == "oneOf" || keyword == "$ref" {
		return out
	}

	field := "/" + strings.Join(ve.InstanceLocation, "/")
	issue := ValidationError{
		Field:   field,
		Keyword: keyword,
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	for _, seen := range out {
		if seen == issue {
			return out
		}
	}
	return append(out, issue)
}
