package httpwire

import (
	"context"

	"github.com/authkit-dev/authkit/trust"
	"github.com/authkit-dev/authkit/version"
)

// Adapter normalizes outbound HTTP for identity flows. Every call runs the
// same three steps: build the engine request, resolve transport security
// options, and normalize whatever the engine returns. The adapter keeps no
// per-call state and is safe for concurrent use.
type Adapter struct {
	config     Config
	engine     Engine
	caps       trust.CapabilityProvider
	middleware []Middleware
	userAgent  string
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithEngine replaces the default net/http engine.
func WithEngine(e Engine) Option {
	return func(a *Adapter) { a.engine = e }
}

// WithCapabilities replaces the default capability provider. Config.Bundle
// is ignored when this option is used.
func WithCapabilities(caps trust.CapabilityProvider) Option {
	return func(a *Adapter) { a.caps = caps }
}

// WithMiddleware wraps the engine with decorators. The first middleware
// listed becomes the outermost layer.
func WithMiddleware(mws ...Middleware) Option {
	return func(a *Adapter) { a.middleware = append(a.middleware, mws...) }
}

// New creates a wire adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Adapter{config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.engine == nil {
		a.engine = &NetEngine{}
	}
	if a.caps == nil {
		a.caps = &trust.SystemCapabilities{BundleFile: cfg.Bundle}
	}

	// Wrap back to front so the first middleware listed observes the
	// call first.
	for i := len(a.middleware) - 1; i >= 0; i-- {
		a.engine = a.middleware[i](a.engine)
	}

	a.userAgent = version.Product + "/" + cfg.Version
	return a, nil
}

// Do executes one exchange: build, resolve, one blocking engine call,
// normalize. Timeouts and cancellation belong to ctx and the engine.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := buildRequest(ctx, req, a.userAgent)
	if err != nil {
		return nil, err
	}

	resp, err := a.engine.Do(httpReq, a.resolveSecurity(httpReq.URL))
	if err != nil {
		return nil, normalizeError(err)
	}
	return normalizeResponse(resp)
}

// Get issues a GET request to url.
func (a *Adapter) Get(ctx context.Context, url string, headers ...Header) (*Response, error) {
	return a.Do(ctx, Request{Method: MethodGet, URL: url, Headers: headers})
}

// Post issues a POST request carrying body.
func (a *Adapter) Post(ctx context.Context, url string, body []byte, headers ...Header) (*Response, error) {
	return a.Do(ctx, Request{Method: MethodPost, URL: url, Body: body, Headers: headers})
}

// UserAgent returns the identifying header value appended to every
// outbound request.
func (a *Adapter) UserAgent() string {
	return a.userAgent
}
