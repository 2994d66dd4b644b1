package testutil

import (
	"context"
	"testing"

	"github.com/skillsenselab/webtest/component"
)

// CleanupFunc stops a previously started component.
type CleanupFunc func() error

// Setup starts a component and returns a cleanup function, for callers
// without a *testing.T at hand.
//
//	cleanup, err := testutil.Setup(srv)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer cleanup()
func Setup(c component.Component) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), c)
}

// SetupWithContext starts a component with a custom context and returns a
// cleanup function.
func SetupWithContext(ctx context.Context, c component.Component) (CleanupFunc, error) {
	if err := c.Start(ctx); err != nil {
		return nil, err
	}
	return func() error { return c.Stop(ctx) }, nil
}

// THelper provides testing.T integration for component setup.
type THelper struct {
	t   testing.TB
	ctx context.Context
}

// T wraps a testing.TB to provide helper methods with automatic cleanup.
func T(t testing.TB) *THelper {
	return &THelper{t: t, ctx: context.Background()}
}

// WithContext sets a custom context for the helper.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts a component and registers its shutdown with the test's
// cleanup, failing the test if the component does not start.
func (h *THelper) Setup(c component.Component) {
	h.t.Helper()
	if err := c.Start(h.ctx); err != nil {
		h.t.Fatalf("failed to start component %s: %v", c.Name(), err)
	}
	h.t.Cleanup(func() {
		if err := c.Stop(h.ctx); err != nil {
			h.t.Errorf("failed to stop component %s: %v", c.Name(), err)
		}
	})
}
