// Package output prints styled status lines for kestrel commands.
//
// Generators report what they did through these helpers rather than
// fmt.Println, so every command shares one look:
//
//	output.Success("Generated application my-app")
//	output.Info("Next steps:")
//	output.Step("nx serve my-app")
//	output.Warn("prettier not found, skipping format")
//	output.Error("workspace.json not found")
//
// Verbose lines only print after SetVerbose(true):
//
//	output.Verbose("Staged 14 files under apps/my-app")
//
// Styling:
//
//   - Success: ✔ green bold
//   - Warn: ⚠ yellow
//   - Error: ✖ red bold
//   - Info: cyan
//   - Step: indented gray
//   - Verbose: gray, only when enabled
package output
