package workspace

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/simonhull/kestrel/internal/tree"
)

// ManifestFile is the dependency manifest at the workspace root.
const ManifestFile = "package.json"

// AddDependencies stages package.json with deps and devDeps added.
//
// An existing entry is kept when it already names a higher version than the
// one requested. Ranges that do not parse as semver are replaced.
func AddDependencies(t *tree.Tree, deps, devDeps map[string]string) error {
	if len(deps) == 0 && len(devDeps) == 0 {
		return nil
	}
	return Update(t, ManifestFile, func(doc Document) error {
		mergeVersions(doc.Object("dependencies"), deps)
		mergeVersions(doc.Object("devDependencies"), devDeps)
		return nil
	})
}

func mergeVersions(section Document, wanted map[string]string) {
	for name, version := range wanted {
		if existing, ok := section[name].(string); ok && newer(existing, version) {
			continue
		}
		section[name] = version
	}
}

// newer reports whether existing names a strictly higher version than wanted.
func newer(existing, wanted string) bool {
	ev, err := parseVersion(existing)
	if err != nil {
		return false
	}
	wv, err := parseVersion(wanted)
	if err != nil {
		// keep a pinned version over an unparseable tag like "latest"
		return true
	}
	return ev.GreaterThan(wv)
}

func parseVersion(v string) (*semver.Version, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimLeft(v, "^~=v")
	return semver.NewVersion(v)
}

// DependencyVersion returns the version of name from dependencies or
// devDependencies, and whether it was found.
func DependencyVersion(doc Document, name string) (string, bool) {
	for _, section := range []string{"dependencies", "devDependencies"} {
		if deps, ok := doc.Lookup(section); ok {
			if v, ok := deps[name].(string); ok {
				return v, true
			}
		}
	}
	return "", false
}
