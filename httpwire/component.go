package httpwire

import (
	"context"
	"fmt"

	"github.com/authkit-dev/authkit/component"
)

// Component wraps an Adapter with lifecycle management for hosts that run
// authkit pieces through a component registry. Health makes the security
// posture observable: the resolver degrades silently per contract, so this
// is where a host sees that calls are falling back to engine-default
// transport security.
type Component struct {
	config  Config
	opts    []Option
	adapter *Adapter
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates the wire component. The adapter is created lazily
// in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string { return "wire" }

// Start builds the adapter and activates the verification capabilities so
// the first call does not pay for bundle loading. A missing capability is
// a health concern, not a start failure.
func (c *Component) Start(_ context.Context) error {
	a, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	a.caps.HasCertificateBundle()
	a.caps.HasHostnameVerifier()
	c.adapter = a
	return nil
}

// Stop releases engine resources.
func (c *Component) Stop(_ context.Context) error {
	if c.adapter == nil {
		return nil
	}
	if closer, ok := c.adapter.engine.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
	return nil
}

// Health reports healthy when calls run with explicit or verified
// transport security, and degraded when the insecure fallback is in
// effect.
func (c *Component) Health(_ context.Context) component.Health {
	h := component.Health{Name: c.Name()}
	switch {
	case c.adapter == nil:
		h.Status = component.StatusUnhealthy
		h.Message = "not started"
	case c.adapter.config.TLS != nil:
		h.Status = component.StatusHealthy
		h.Message = "transport security overridden"
	case c.adapter.caps.HasCertificateBundle() && c.adapter.caps.HasHostnameVerifier():
		h.Status = component.StatusHealthy
	default:
		h.Status = component.StatusDegraded
		h.Message = "verification capabilities unavailable; calls use engine-default transport security"
	}
	return h
}

// Describe reports the adapter summary for host startup reporting.
func (c *Component) Describe() component.Description {
	detail := "tls=resolved"
	switch {
	case c.config.TLS != nil:
		detail = "tls=override"
	case c.config.Bundle != "":
		detail = fmt.Sprintf("tls=resolved bundle=%s", c.config.Bundle)
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "wire",
		Details: detail,
	}
}

// Adapter returns the underlying adapter. Must be called after Start.
func (c *Component) Adapter() *Adapter {
	return c.adapter
}
