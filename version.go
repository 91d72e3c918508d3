// Package kestrel scaffolds front-end applications inside a monorepo workspace
// and generates reference documentation for the workspace command line.
package kestrel

// Version is the current kestrel release.
const Version = "0.3.0"
