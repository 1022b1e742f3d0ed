package testutil

import (
	"context"

	"github.com/kbukum/fetchkit/component"
)

// TestComponent is a component.Component that can be rewound between
// test cases.
type TestComponent interface {
	component.Component

	// Reset returns the component to its initial state.
	Reset(ctx context.Context) error
	// Snapshot captures the current state for a later Restore.
	Snapshot(ctx context.Context) (any, error)
	// Restore returns to a state captured by Snapshot.
	Restore(ctx context.Context, snapshot any) error
}
