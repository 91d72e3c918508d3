// Package workspace reads and edits the workspace's JSON configuration:
// the project registry (workspace.json), the tag registry (nx.json) and the
// dependency manifest (package.json).
//
// Edits go through a tree.Tree and keep every key the generator does not
// own, so unrelated configuration survives a read-modify-write.
package workspace
