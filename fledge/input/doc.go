// Package input provides line-based terminal prompts.
//
//	name := input.Prompt("Application name", "")
//	if input.Confirm("Clear docs/react/api-workspace/npmscripts?", false) {
//	    // ...
//	}
//
// The package-level functions read stdin and write stdout. Tests and
// non-interactive callers construct a Prompter over their own streams.
package input
