package httpwire

import (
	"crypto/x509"
	"net/http"
	"sync"
	"time"

	"github.com/authkit-dev/authkit/trust"
)

// Engine is the transport that actually performs an exchange. The adapter
// hands it one built request plus the resolved security options and takes
// whatever comes back. Pooling, redirects, proxies, and timeout policy all
// belong to the engine.
//
// A failure whose chain carries a dial-phase *net.OpError is treated as the
// connect-failure family by the normalizer; everything else reaches the
// caller unchanged.
type Engine interface {
	Do(req *http.Request, opts trust.Options) (*http.Response, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(req *http.Request, opts trust.Options) (*http.Response, error)

// Do calls f.
func (f EngineFunc) Do(req *http.Request, opts trust.Options) (*http.Response, error) {
	return f(req, opts)
}

// NetEngine is the stock engine on net/http. The zero value is ready to
// use.
//
// Unset options run on a pooled default transport, which in Go still
// verifies against the system roots: a stricter default than a bare "no
// verification" engine, with identical resolver semantics. A verification
// descriptor gets a dedicated transport built from it; clients are cached
// per descriptor identity (trusted pool plus bound host) so connections
// are reused across calls to the same provider. Options.Depth rides along
// as documentation only: crypto/tls exposes no chain-depth knob.
type NetEngine struct {
	// Timeout bounds each exchange end to end. Zero means no engine
	// timeout; deadlines then belong to the request context. Set before
	// first use.
	Timeout time.Duration

	mu      sync.Mutex
	base    *http.Client
	secured map[securedKey]*http.Client
}

var _ Engine = (*NetEngine)(nil)

type securedKey struct {
	roots *x509.CertPool
	host  string
}

// Do performs the exchange with the given security options.
func (e *NetEngine) Do(req *http.Request, opts trust.Options) (*http.Response, error) {
	return e.clientFor(opts).Do(req)
}

// CloseIdleConnections drops idle connections on every client the engine
// has built so far.
func (e *NetEngine) CloseIdleConnections() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.base != nil {
		e.base.CloseIdleConnections()
	}
	for _, c := range e.secured {
		c.CloseIdleConnections()
	}
}

func (e *NetEngine) clientFor(opts trust.Options) *http.Client {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opts.IsZero() {
		if e.base == nil {
			e.base = &http.Client{
				Transport: http.DefaultTransport.(*http.Transport).Clone(),
				Timeout:   e.Timeout,
			}
		}
		return e.base
	}

	key := securedKey{roots: opts.Roots, host: opts.Host}
	if c, ok := e.secured[key]; ok {
		return c
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = opts.TLSConfig()
	c := &http.Client{Transport: transport, Timeout: e.Timeout}

	if e.secured == nil {
		e.secured = make(map[securedKey]*http.Client)
	}
	e.secured[key] = c
	return c
}
