// Package styled maps CSS-in-JS libraries to the packages they need.
package styled

import "github.com/simonhull/kestrel/internal/schematics/versions"

// Dependencies are the npm packages a styled module requires.
type Dependencies struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Modules maps a style option naming a CSS-in-JS library to its packages.
var Modules = map[string]Dependencies{
	"styled-components": {
		Dependencies: map[string]string{
			"react-is":          versions.ReactIs,
			"styled-components": versions.StyledComponents,
		},
		DevDependencies: map[string]string{
			"@types/styled-components": versions.TypesStyledComponents,
			"@types/react-is":          versions.TypesReactIs,
		},
	},
	"@emotion/styled": {
		Dependencies: map[string]string{
			"@emotion/styled": versions.EmotionStyled,
			"@emotion/core":   versions.EmotionCore,
		},
		DevDependencies: map[string]string{},
	},
}

// PlainStyles are the stylesheet extensions that need no library.
var PlainStyles = []string{"css", "scss", "less", "styl"}

// IsPlain reports whether style is a stylesheet extension.
func IsPlain(style string) bool {
	for _, s := range PlainStyles {
		if s == style {
			return true
		}
	}
	return false
}

// IsValid reports whether style is a plain stylesheet or a known module.
func IsValid(style string) bool {
	_, ok := Modules[style]
	return ok || IsPlain(style)
}

// Lookup returns the packages for a styled module. ok is false for plain
// stylesheets and unknown values.
func Lookup(module string) (Dependencies, bool) {
	deps, ok := Modules[module]
	return deps, ok
}
