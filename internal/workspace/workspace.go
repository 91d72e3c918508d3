package workspace

import (
	"fmt"

	"github.com/imdario/mergo"

	"github.com/simonhull/kestrel/internal/tree"
)

// RegistryFile is the project registry at the workspace root.
const RegistryFile = "workspace.json"

// Project is one registry entry
type Project struct {
	Root        string            `json:"root"`
	SourceRoot  string            `json:"sourceRoot"`
	ProjectType string            `json:"projectType"`
	Schematics  map[string]any    `json:"schematics"`
	Architect   map[string]Target `json:"architect"`
}

// Target is a named architect target: a builder plus its options.
type Target struct {
	Builder        string         `json:"builder"`
	Options        any            `json:"options,omitempty"`
	Configurations map[string]any `json:"configurations,omitempty"`
}

// Workspace is the decoded project registry.
type Workspace struct {
	doc Document
}

// ParseWorkspace decodes workspace.json content.
func ParseWorkspace(data []byte) (*Workspace, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", RegistryFile, err)
	}
	return &Workspace{doc: doc}, nil
}

// Document exposes the underlying JSON object.
func (w *Workspace) Document() Document {
	return w.doc
}

// SetProject registers p under name, replacing any previous entry.
func (w *Workspace) SetProject(name string, p Project) error {
	if p.Schematics == nil {
		p.Schematics = map[string]any{}
	}
	entry, err := toDocument(p)
	if err != nil {
		return fmt.Errorf("encoding project %s: %w", name, err)
	}
	w.doc.Object("projects")[name] = entry
	return nil
}

// Project returns the entry for name.
func (w *Workspace) Project(name string) (*Project, bool, error) {
	projects, _ := w.doc.Lookup("projects")
	raw, ok := projects[name]
	if !ok {
		return nil, false, nil
	}
	var p Project
	if err := fromDocument(raw, &p); err != nil {
		return nil, true, fmt.Errorf("decoding project %s: %w", name, err)
	}
	return &p, true, nil
}

// AddTarget adds or replaces one architect target of an existing project.
func (w *Workspace) AddTarget(project, name string, target Target) error {
	raw, ok := w.doc.Object("projects")[project]
	if !ok {
		return fmt.Errorf("project %q is not registered", project)
	}
	entry, ok := asObject(raw)
	if !ok {
		return fmt.Errorf("project %q is not an object", project)
	}

	encoded, err := toDocument(target)
	if err != nil {
		return fmt.Errorf("encoding target %s:%s: %w", project, name, err)
	}
	entry.Object("architect")[name] = encoded
	return nil
}

// ProjectNames lists the registered projects in no particular order.
func (w *Workspace) ProjectNames() []string {
	projects, _ := w.doc.Lookup("projects")
	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	return names
}

// DefaultProject returns the workspace default project, or "".
func (w *Workspace) DefaultProject() string {
	return w.doc.String("defaultProject")
}

// SetDefaultProjectIfEmpty sets the default project unless one is set.
func (w *Workspace) SetDefaultProjectIfEmpty(name string) {
	if w.DefaultProject() == "" {
		w.doc["defaultProject"] = name
	}
}

// DefaultCollection returns cli.defaultCollection.
func (w *Workspace) DefaultCollection() string {
	cli, ok := w.doc.Lookup("cli")
	if !ok {
		return ""
	}
	return cli.String("defaultCollection")
}

// SetDefaultCollectionIfEmpty sets cli.defaultCollection unless one is set.
func (w *Workspace) SetDefaultCollectionIfEmpty(collection string) {
	cli := w.doc.Object("cli")
	if cli.String("defaultCollection") == "" {
		cli["defaultCollection"] = collection
	}
}

// SchematicDefaults returns the stored defaults for one generator kind of a
// collection, e.g. ("@nrwl/react", "application").
func (w *Workspace) SchematicDefaults(collection, kind string) map[string]any {
	schematics, ok := w.doc.Lookup("schematics")
	if !ok {
		return nil
	}
	byKind, ok := schematics.Lookup(collection)
	if !ok {
		return nil
	}
	defaults, ok := byKind.Lookup(kind)
	if !ok {
		return nil
	}
	return defaults
}

// MergeSchematicDefaults merges values into the stored defaults for
// collection/kind. Values win over stored keys; stored keys absent from
// values are kept, as are other kinds and other collections.
func (w *Workspace) MergeSchematicDefaults(collection, kind string, values map[string]any) error {
	byKind := w.doc.Object("schematics").Object(collection)
	current := byKind.Object(kind)

	merged := map[string]any(current)
	if err := mergo.Merge(&merged, values, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging %s:%s defaults: %w", collection, kind, err)
	}
	byKind[kind] = Document(merged)
	return nil
}

// Encode renders the registry.
func (w *Workspace) Encode() ([]byte, error) {
	return w.doc.Encode()
}

// UpdateWorkspace reads workspace.json from t, applies fn and stages the result.
func UpdateWorkspace(t *tree.Tree, fn func(*Workspace) error) error {
	return Update(t, RegistryFile, func(doc Document) error {
		return fn(&Workspace{doc: doc})
	})
}

// ReadWorkspace decodes workspace.json as currently staged in t.
func ReadWorkspace(t *tree.Tree) (*Workspace, error) {
	data, err := t.Read(RegistryFile)
	if err != nil {
		return nil, err
	}
	return ParseWorkspace(data)
}
