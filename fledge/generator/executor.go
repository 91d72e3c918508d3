package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Quiet  bool      // Suppress per-operation lines
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute validates every operation, then runs them in order.
//
// Files touched by Targeted operations are journaled; if any operation
// fails, the journal is rolled back before the error is returned.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	// Phase 1: validate the whole batch
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if opts.DryRun {
		for _, op := range ops {
			if !opts.Quiet {
				fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			}
		}
		return nil
	}

	// Phase 2: execute with a rollback journal
	tx := NewTransaction()
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return rollback(tx, fmt.Errorf("execution cancelled: %w", err))
		}

		if t, ok := op.(Targeted); ok {
			for _, path := range t.Targets() {
				if err := tx.Snapshot(path); err != nil {
					return rollback(tx, err)
				}
			}
		}

		if err := op.Execute(ctx); err != nil {
			return rollback(tx, fmt.Errorf("execution failed: %w", err))
		}

		if !opts.Quiet {
			fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
		}
	}

	return tx.Commit()
}

func rollback(tx *Transaction, cause error) error {
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("%w (rollback failed: %v)", cause, err)
	}
	return cause
}
