// Package generator applies staged file changes to disk and renders the
// templates that produce them.
//
// # Operations
//
// Every change is an Operation. Execute validates the whole batch first and
// only then runs it, so a conflict found late never leaves half a project on
// disk:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "apps/my-app/src/main.tsx", Content: src, Mode: 0644},
//	    &generator.RemoveAllOp{Path: "docs/react/api-workspace/npmscripts"},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: dryRun})
//
// # Transactions
//
// Operations that report their target paths are journaled in a Transaction
// before they run. If a later operation fails, every journaled file is put
// back the way it was.
//
// # Conflicts
//
// A Resolver decides what to do when a generated file already exists:
// overwrite, skip, ask interactively, or fail.
package generator
