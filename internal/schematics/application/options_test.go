package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_StyledModule(t *testing.T) {
	for _, style := range []string{"css", "scss", "less", "styl"} {
		opts, err := Normalize(Options{Name: "app", Style: style})
		require.NoError(t, err, style)
		assert.Empty(t, opts.StyledModule, style)
	}
	for _, style := range []string{"styled-components", "@emotion/styled"} {
		opts, err := Normalize(Options{Name: "app", Style: style})
		require.NoError(t, err, style)
		assert.Equal(t, style, opts.StyledModule)
	}
}

func TestNormalize_Paths(t *testing.T) {
	tests := []struct {
		name      string
		raw       Options
		project   string
		e2e       string
		root      string
		e2eRoot   string
		fileName  string
		className string
	}{
		{
			name:      "plain",
			raw:       Options{Name: "my-app"},
			project:   "my-app",
			e2e:       "my-app-e2e",
			root:      "apps/my-app",
			e2eRoot:   "apps/my-app-e2e",
			fileName:  "app",
			className: "MyApp",
		},
		{
			name:      "directory",
			raw:       Options{Name: "foo", Directory: "bar"},
			project:   "bar-foo",
			e2e:       "bar-foo-e2e",
			root:      "apps/bar/foo",
			e2eRoot:   "apps/bar/foo-e2e",
			fileName:  "app",
			className: "Foo",
		},
		{
			name:      "camel case and pascal files",
			raw:       Options{Name: "MyApp", Directory: "myDir", PascalCaseFiles: true},
			project:   "my-dir-my-app",
			e2e:       "my-dir-my-app-e2e",
			root:      "apps/my-dir/my-app",
			e2eRoot:   "apps/my-dir/my-app-e2e",
			fileName:  "App",
			className: "MyApp",
		},
		{
			name:      "nested directory",
			raw:       Options{Name: "admin", Directory: "tools/internal"},
			project:   "tools-internal-admin",
			e2e:       "tools-internal-admin-e2e",
			root:      "apps/tools/internal/admin",
			e2eRoot:   "apps/tools/internal/admin-e2e",
			fileName:  "app",
			className: "Admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.project, opts.ProjectName)
			assert.Equal(t, tt.e2e, opts.E2EProjectName)
			assert.Equal(t, tt.root, opts.AppProjectRoot)
			assert.Equal(t, tt.e2eRoot, opts.E2EProjectRoot)
			assert.Equal(t, tt.fileName, opts.FileName)
			assert.Equal(t, tt.className, opts.Names.ClassName)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	opts, err := Normalize(Options{Name: "app"})
	require.NoError(t, err)
	assert.Equal(t, "css", opts.Style)
	assert.Equal(t, "eslint", opts.Linter)
	assert.Equal(t, "jest", opts.UnitTestRunner)
	assert.Equal(t, "cypress", opts.E2ETestRunner)
	assert.Equal(t, []string{}, opts.ParsedTags)
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  Options
		want error
	}{
		{"missing name", Options{}, ErrNameRequired},
		{"blank name", Options{Name: "  "}, ErrNameRequired},
		{"bad style", Options{Name: "a", Style: "sass"}, ErrInvalidStyle},
		{"bad linter", Options{Name: "a", Linter: "jshint"}, ErrInvalidOption},
		{"bad unit runner", Options{Name: "a", UnitTestRunner: "karma"}, ErrInvalidOption},
		{"bad e2e runner", Options{Name: "a", E2ETestRunner: "protractor"}, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Normalize(tt.raw)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, opts)
		})
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a, b ,c"))
	assert.Equal(t, []string{"scope:shared"}, ParseTags("scope:shared"))
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags("   "))
}

func TestDecodeOptions(t *testing.T) {
	opts, err := DecodeOptions([]byte(`{"name":"shop","style":"scss","routing":true,"skipWorkspaceJson":true}`))
	require.NoError(t, err)
	assert.Equal(t, Options{Name: "shop", Style: "scss", Routing: true, SkipWorkspaceJSON: true}, opts)

	_, err = DecodeOptions([]byte(`{"name":"shop","style":"sass"}`))
	assert.Error(t, err)

	_, err = DecodeOptions([]byte(`{"style":"css"}`))
	assert.Error(t, err)

	_, err = DecodeOptions([]byte(`{"name":"shop","unknown":1}`))
	assert.Error(t, err)
}
