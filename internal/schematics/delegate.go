package schematics

import (
	"context"

	"github.com/simonhull/kestrel/internal/tree"
)

// E2EOptions is what an e2e project generator receives.
type E2EOptions struct {
	Name      string // e2e project name before directory prefixing, e.g. "my-app-e2e"
	Directory string
	Project   string // project under test
	Linter    string
}

// E2EGenerator scaffolds an end-to-end test project for an application.
type E2EGenerator interface {
	GenerateE2EProject(ctx context.Context, t *tree.Tree, opts E2EOptions) error
}

// UnitTestOptions is what a unit test setup generator receives.
type UnitTestOptions struct {
	Project         string
	SupportTSX      bool
	SkipSerializers bool
	SetupFile       string // "none" for no setup file
}

// UnitTestGenerator wires a unit test runner into an existing project.
type UnitTestGenerator interface {
	GenerateUnitTestSetup(ctx context.Context, t *tree.Tree, opts UnitTestOptions) error
}
