package application

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/simonhull/kestrel/fledge/generator"
	"github.com/simonhull/kestrel/internal/schematics/styled"
)

var (
	// ErrNameRequired is returned when no application name was given.
	ErrNameRequired = errors.New("application name is required")
	// ErrInvalidStyle is returned for a style outside the recognized set.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidOption is returned when an enumerated option has an unknown value.
	ErrInvalidOption = errors.New("invalid option")
)

// Options are the raw generator options as supplied by a user.
type Options struct {
	Name              string `json:"name" validate:"required"`
	Directory         string `json:"directory,omitempty"`
	Style             string `json:"style,omitempty"`
	Routing           bool   `json:"routing,omitempty"`
	Linter            string `json:"linter,omitempty" validate:"oneof=eslint tslint"`
	UnitTestRunner    string `json:"unitTestRunner,omitempty" validate:"oneof=jest none"`
	E2ETestRunner     string `json:"e2eTestRunner,omitempty" validate:"oneof=cypress none"`
	Tags              string `json:"tags,omitempty"`
	PascalCaseFiles   bool   `json:"pascalCaseFiles,omitempty"`
	Babel             bool   `json:"babel,omitempty"`
	SkipWorkspaceJSON bool   `json:"skipWorkspaceJson,omitempty"`
	SkipFormat        bool   `json:"skipFormat,omitempty"`
}

// Option defaults applied by Normalize.
const (
	DefaultStyle          = "css"
	DefaultLinter         = "eslint"
	DefaultUnitTestRunner = "jest"
	DefaultE2ETestRunner  = "cypress"
)

// NormalizedOptions carries every value the generation steps derive from
// the raw options.
type NormalizedOptions struct {
	Options

	ProjectName    string
	E2EProjectName string
	AppDirectory   string
	AppProjectRoot string
	E2EProjectRoot string
	ParsedTags     []string
	FileName       string
	StyledModule   string // empty for plain stylesheets
	Names          generator.Names
}

var validate = validator.New()

// Normalize validates raw options and derives the project naming. It has no
// side effects.
func Normalize(raw Options) (*NormalizedOptions, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, ErrNameRequired
	}

	opts := raw
	if opts.Style == "" {
		opts.Style = DefaultStyle
	}
	if opts.Linter == "" {
		opts.Linter = DefaultLinter
	}
	if opts.UnitTestRunner == "" {
		opts.UnitTestRunner = DefaultUnitTestRunner
	}
	if opts.E2ETestRunner == "" {
		opts.E2ETestRunner = DefaultE2ETestRunner
	}

	if !styled.IsValid(opts.Style) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, opts.Style)
	}
	if err := validate.Struct(opts); err != nil {
		return nil, validationError(err)
	}

	appDirectory := generator.ToFileName(opts.Name)
	if opts.Directory != "" {
		appDirectory = generator.ToFileName(opts.Directory) + "/" + generator.ToFileName(opts.Name)
	}
	appDirectory = strings.Trim(path.Clean(appDirectory), "/")
	projectName := strings.ReplaceAll(appDirectory, "/", "-")

	fileName := "app"
	if opts.PascalCaseFiles {
		fileName = "App"
	}

	styledModule := ""
	if !styled.IsPlain(opts.Style) {
		styledModule = opts.Style
	}

	opts.Name = generator.ToFileName(opts.Name)

	return &NormalizedOptions{
		Options:        opts,
		ProjectName:    projectName,
		E2EProjectName: projectName + "-e2e",
		AppDirectory:   appDirectory,
		AppProjectRoot: "apps/" + appDirectory,
		E2EProjectRoot: "apps/" + appDirectory + "-e2e",
		ParsedTags:     ParseTags(opts.Tags),
		FileName:       fileName,
		StyledModule:   styledModule,
		Names:          generator.NewNames(raw.Name),
	}, nil
}

// ParseTags splits a comma separated tag list, trimming each entry.
func ParseTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return ErrNameRequired
	}
	return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalidOption, fe.Field(), fe.Param(), fe.Value())
}
