package httpclient

import (
	"context"
	"sync"

	"github.com/kbukum/fetchkit/component"
)

// Component owns an Adapter for the lifetime of an application.
type Component struct {
	config Config
	opts   []Option

	mu      sync.RWMutex
	adapter *Adapter
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent returns a Component; the Adapter is built in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name == "" {
		return defaultName
	}
	return c.config.Name
}

// Start builds the Adapter.
func (c *Component) Start(_ context.Context) error {
	a, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.adapter = a
	c.mu.Unlock()
	return nil
}

// Stop closes idle connections.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.RLock()
	a := c.adapter
	c.mu.RUnlock()
	if a == nil {
		return nil
	}
	return a.Close(ctx)
}

// Health is unhealthy until Start succeeds.
func (c *Component) Health(ctx context.Context) component.Health {
	a := c.Adapter()
	if a == nil || !a.IsAvailable(ctx) {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe reports the base URL for startup summaries.
func (c *Component) Describe() component.Description {
	details := c.config.BaseURL
	if c.config.TLS.Enabled() {
		details += " tls"
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "http-transport",
		Details: details,
	}
}

// Adapter returns the running Adapter, or nil before Start.
func (c *Component) Adapter() *Adapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adapter
}
