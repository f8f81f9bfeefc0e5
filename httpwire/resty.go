package httpwire

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/authkit-dev/authkit/trust"
)

// RestyEngine performs exchanges through go-resty. Resty brings its own
// pooling and redirect handling; the adapter contract is unchanged: one
// built request in, one raw response or failure out. The zero value is
// ready to use.
type RestyEngine struct {
	// Timeout bounds each exchange. Zero leaves resty's default in
	// place. Set before first use.
	Timeout time.Duration

	mu      sync.Mutex
	base    *resty.Client
	secured map[securedKey]*resty.Client
}

var _ Engine = (*RestyEngine)(nil)

// Do performs the exchange with the given security options.
func (e *RestyEngine) Do(req *http.Request, opts trust.Options) (*http.Response, error) {
	r := e.clientFor(opts).R().SetContext(req.Context())
	r.Header = req.Header.Clone()

	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, err
		}
		r.SetBody(payload)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	// Resty drains the raw body during execution; rebuild it so the
	// normalizer sees the engine-standard shape.
	raw := resp.RawResponse
	raw.Body = io.NopCloser(bytes.NewReader(resp.Body()))
	return raw, nil
}

// CloseIdleConnections drops idle connections on every client the engine
// has built so far.
func (e *RestyEngine) CloseIdleConnections() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.base != nil {
		e.base.GetClient().CloseIdleConnections()
	}
	for _, c := range e.secured {
		c.GetClient().CloseIdleConnections()
	}
}

func (e *RestyEngine) clientFor(opts trust.Options) *resty.Client {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opts.IsZero() {
		if e.base == nil {
			e.base = e.newClient(opts)
		}
		return e.base
	}

	key := securedKey{roots: opts.Roots, host: opts.Host}
	if c, ok := e.secured[key]; ok {
		return c
	}

	c := e.newClient(opts)
	if e.secured == nil {
		e.secured = make(map[securedKey]*resty.Client)
	}
	e.secured[key] = c
	return c
}

func (e *RestyEngine) newClient(opts trust.Options) *resty.Client {
	c := resty.New()
	if e.Timeout > 0 {
		c.SetTimeout(e.Timeout)
	}
	if cfg := opts.TLSConfig(); cfg != nil {
		c.SetTLSClientConfig(cfg)
	}
	return c
}
