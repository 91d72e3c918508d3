package astutil

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appTSX = `import React from 'react';

import './app.css';

export const App = () => {
  return (
    <div className="app">
      <header>Welcome</header>
    </div>
  );
};

export default App;
`

func TestParse_ValidAndInvalid(t *testing.T) {
	src, err := Parse(context.Background(), []byte(appTSX))
	require.NoError(t, err)
	assert.NoError(t, src.Validate())

	bad, err := Parse(context.Background(), []byte("export const App = () => <div>;"))
	require.NoError(t, err)
	assert.True(t, errors.Is(bad.Validate(), ErrSyntax))
}

func TestSource_AfterLastImport(t *testing.T) {
	src, err := Parse(context.Background(), []byte(appTSX))
	require.NoError(t, err)

	pos := src.AfterLastImport()
	assert.Equal(t, strings.Index(appTSX, "import './app.css';")+len("import './app.css';"), pos)
	assert.Len(t, src.Imports(), 2)

	none, err := Parse(context.Background(), []byte("const a = 1;\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, none.AfterLastImport())
}

func TestSource_ClosingTagStart(t *testing.T) {
	src, err := Parse(context.Background(), []byte(appTSX))
	require.NoError(t, err)

	pos, ok := src.ClosingTagStart()
	require.True(t, ok)
	assert.Equal(t, strings.Index(appTSX, "</div>"), pos)

	noJSX, err := Parse(context.Background(), []byte("export const x = 1;\n"))
	require.NoError(t, err)
	_, ok = noJSX.ClosingTagStart()
	assert.False(t, ok)
}

func TestApplyChanges(t *testing.T) {
	out, err := ApplyChanges([]byte("abcdef"), []Change{
		{Pos: 6, Text: "!"},
		{Pos: 0, Text: ">"},
		{Pos: 3, Text: "1"},
		{Pos: 3, Text: "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, ">abc12def!", string(out))

	_, err = ApplyChanges([]byte("abc"), []Change{{Pos: 4, Text: "x"}})
	assert.Error(t, err)
}

func TestModifier_RejectsInvalidResult(t *testing.T) {
	src, err := Parse(context.Background(), []byte(appTSX))
	require.NoError(t, err)

	m := NewModifier(src)
	m.Insert(src.AfterLastImport(), "\nimport {")
	_, err = m.Apply(context.Background())
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestAddGlobal(t *testing.T) {
	polyfills := "/**\n * Polyfills\n */\nimport 'zone.js';\n\nconst x = 1;\n"

	out, err := AddGlobal(context.Background(), []byte(polyfills), "\nimport 'core-js/stable';\n")
	require.NoError(t, err)

	got := string(out)
	assert.Less(t, strings.Index(got, "import 'zone.js';"), strings.Index(got, "import 'core-js/stable';"))
	assert.Less(t, strings.Index(got, "import 'core-js/stable';"), strings.Index(got, "const x = 1;"))

	empty, err := AddGlobal(context.Background(), []byte("// nothing\n"), "import 'core-js/stable';\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(empty), "import 'core-js/stable';"))
}

func TestInsertBeforeClosingTag(t *testing.T) {
	out, ok, err := InsertBeforeClosingTag(context.Background(), []byte(appTSX),
		"\nimport { Route } from 'react-router-dom';",
		"<Route path=\"/\" render={() => <div>home</div>} />\n    ")
	require.NoError(t, err)
	require.True(t, ok)

	got := string(out)
	assert.Contains(t, got, "import { Route } from 'react-router-dom';")
	assert.Less(t, strings.Index(got, "<Route"), strings.Index(got, "</div>\n  );"))
	assert.Contains(t, got, "<header>Welcome</header>\n    <Route")
	assert.Contains(t, got, "home</div>} />\n    </div>\n  );")

	same, ok, err := InsertBeforeClosingTag(context.Background(), []byte("const a = 1;\n"), "x", "y")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "const a = 1;\n", string(same))
}
