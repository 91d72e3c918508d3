package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string.
// The name is used for caching and error messages.
func (r *Renderer) RenderString(name, text string, data any) ([]byte, error) {
	tmpl, err := r.parse("string:"+name, name, func() (string, error) { return text, nil })
	if err != nil {
		return nil, err
	}
	return r.executeTemplate(tmpl, data)
}

// RenderFS renders the template at path inside fsys.
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	tmpl, err := r.parse(fmt.Sprintf("fs:%p:%s", fsys, path), path, func() (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return string(b), nil
	})
	if err != nil {
		return nil, err
	}
	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) parse(key, name string, load func() (string, error)) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	text, err := load()
	if err != nil {
		return nil, err
	}

	tmpl, err = template.New(name).Funcs(r.funcMap).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
	}

	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()
	return tmpl, nil
}

func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// Name casing
		"fileName":     ToFileName,     // MyApp → my-app
		"className":    ToClassName,    // my-app → MyApp
		"propertyName": ToPropertyName, // my-app → myApp
		"constantName": ToConstantName, // my-app → MY_APP

		"quote":     Quote,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"join":      strings.Join,
		"hasPrefix": strings.HasPrefix,
		"replace":   strings.ReplaceAll,

		"dict":    Dict,
		"default": Default,
	}
}

// Quote wraps a string in single quotes, the quoting style of generated TS sources.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// Dict creates a map from alternating key-value pairs
// Usage in template: {{ template "partial" (dict "key1" val1 "key2" val2) }}
func Dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments")
	}

	result := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings, got %T at position %d", values[i], i)
		}
		result[key] = values[i+1]
	}
	return result, nil
}

// Default returns defaultVal when val is nil or the empty string.
func Default(defaultVal, val any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
