// Package schematics runs generators as ordered chains of rules over a
// staged tree.
package schematics

import (
	"context"
	"fmt"
	"time"

	"github.com/simonhull/kestrel/internal/logger"
	"github.com/simonhull/kestrel/internal/tree"
)

// Rule transforms the staged tree. A rule that has nothing to do returns nil.
type Rule func(ctx context.Context, t *tree.Tree) error

// Noop is the identity rule
func Noop(ctx context.Context, t *tree.Tree) error {
	return nil
}

// When returns rule if cond holds and Noop otherwise.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Noop
}

// Named labels a rule for logs and error messages.
func Named(name string, rule Rule) Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		start := time.Now()
		logger.Debug("rule started", logger.F("rule", name))

		if err := rule(ctx, t); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		logger.Debug("rule finished",
			logger.F("rule", name),
			logger.F("staged", t.Len()),
			logger.F("took", time.Since(start).Round(time.Microsecond)))
		return nil
	}
}

// Chain runs rules in order and stops at the first error. Cancelling ctx
// stops the chain between rules.
func Chain(rules ...Rule) Rule {
	return func(ctx context.Context, t *tree.Tree) error {
		for _, rule := range rules {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := rule(ctx, t); err != nil {
				return err
			}
		}
		return nil
	}
}
