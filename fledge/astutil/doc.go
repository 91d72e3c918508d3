// Package astutil edits TypeScript and TSX sources by splicing text at
// positions found in a syntax tree.
//
// Edits are queued on a Modifier and applied together. The result is
// re-parsed, and an edit that leaves the file unparseable is rejected:
//
//	src, err := astutil.Parse(ctx, content)
//	m := astutil.NewModifier(src)
//	m.Insert(src.AfterLastImport(), "\nimport 'core-js/stable';\n")
//	out, err := m.Apply(ctx)
package astutil
