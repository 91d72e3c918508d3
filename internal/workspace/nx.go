package workspace

import (
	"github.com/simonhull/kestrel/internal/tree"
)

// TagsFile is the tag registry at the workspace root.
const TagsFile = "nx.json"

// NxProject is a tag registry entry
type NxProject struct {
	Tags                 []string `json:"tags"`
	ImplicitDependencies []string `json:"implicitDependencies,omitempty"`
}

// SetNxProject records tags (and implicit dependencies) for a project,
// replacing any previous entry. Other projects and top-level keys are kept.
func SetNxProject(doc Document, name string, p NxProject) error {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	entry, err := toDocument(p)
	if err != nil {
		return err
	}
	doc.Object("projects")[name] = entry
	return nil
}

// NxProjectOf returns the registry entry for name.
func NxProjectOf(doc Document, name string) (*NxProject, bool, error) {
	projects, _ := doc.Lookup("projects")
	raw, ok := projects[name]
	if !ok {
		return nil, false, nil
	}
	var p NxProject
	if err := fromDocument(raw, &p); err != nil {
		return nil, true, err
	}
	return &p, true, nil
}

// UpdateNx reads nx.json from t, applies fn and stages the result.
func UpdateNx(t *tree.Tree, fn func(Document) error) error {
	return Update(t, TagsFile, fn)
}
