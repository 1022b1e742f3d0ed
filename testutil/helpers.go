package testutil

import (
	"context"
	"testing"
)

// THelper ties test components to a testing.TB.
type THelper struct {
	tb  testing.TB
	ctx context.Context
}

// T wraps tb.
func T(tb testing.TB) *THelper {
	return &THelper{tb: tb, ctx: context.Background()}
}

// Setup starts c and stops it when the test ends.
func (h *THelper) Setup(c TestComponent) {
	h.tb.Helper()
	if err := c.Start(h.ctx); err != nil {
		h.tb.Fatalf("failed to start component %s: %v", c.Name(), err)
	}
	h.tb.Cleanup(func() {
		if err := c.Stop(h.ctx); err != nil {
			h.tb.Errorf("failed to stop component %s: %v", c.Name(), err)
		}
	})
}

// Reset rewinds c.
func (h *THelper) Reset(c TestComponent) {
	h.tb.Helper()
	if err := c.Reset(h.ctx); err != nil {
		h.tb.Fatalf("failed to reset component %s: %v", c.Name(), err)
	}
}

// Snapshot captures c's state.
func (h *THelper) Snapshot(c TestComponent) any {
	h.tb.Helper()
	s, err := c.Snapshot(h.ctx)
	if err != nil {
		h.tb.Fatalf("failed to snapshot component %s: %v", c.Name(), err)
	}
	return s
}

// Restore returns c to snapshot.
func (h *THelper) Restore(c TestComponent, snapshot any) {
	h.tb.Helper()
	if err := c.Restore(h.ctx, snapshot); err != nil {
		h.tb.Fatalf("failed to restore component %s: %v", c.Name(), err)
	}
}
