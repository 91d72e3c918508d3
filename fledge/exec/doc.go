// Package exec runs external tools (formatters, package managers) on behalf
// of generators.
//
// An Executor carries the working directory, environment and output streams:
//
//	executor := exec.NewExecutor(&exec.Options{Dir: root})
//	err := executor.Run(ctx, "npx", "prettier", "--write", "apps/my-app/src/main.tsx")
//
// RunWithSpinner hides the tool's output behind a spinner and only replays
// stderr when the tool fails. A tool that is not installed is reported as
// ErrCommandNotFound so callers can degrade gracefully.
package exec
