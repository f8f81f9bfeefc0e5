package httpwire

import "strings"

// Method is an outbound HTTP verb. Identity flows talk to providers with
// exactly two verbs; anything else is rejected before the engine sees it.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// valid reports whether the method is part of the fixed enumeration.
func (m Method) valid() bool {
	return m == MethodGet || m == MethodPost
}

// Header is one name/value text pair. Callers hand the adapter an ordered
// list; order and duplicates are preserved on the way to the engine.
type Header struct {
	Name  string
	Value string
}

// Request describes one outbound exchange. It is constructed fresh per
// call and never mutated by the adapter.
type Request struct {
	// Method is the verb, MethodGet or MethodPost.
	Method Method

	// URL is the absolute target URL.
	URL string

	// Body is the raw request payload. nil means no body; an empty
	// non-nil slice is a present, zero-length body.
	Body []byte

	// Headers are caller headers in send order. Duplicate names are
	// legal and preserved.
	Headers []Header
}

// Response is the normalized result of an exchange that reached the
// server. Any status code counts as a completed exchange; classifying
// 4xx/5xx is the caller's business.
type Response struct {
	// StatusCode is the numeric HTTP status, verbatim.
	StatusCode int

	// Headers holds every response header with its name lower-cased,
	// sorted by name. Original casing is discarded. Values of a repeated
	// name keep their wire order.
	Headers []Header

	// Body is the whole payload as one contiguous byte sequence, exactly
	// as received. It is never a stream and never re-encoded.
	Body []byte
}

// Header returns the first value of the named header, or "" when absent.
// The lookup is case-insensitive; stored names are already lower-case.
func (r *Response) Header(name string) string {
	name = strings.ToLower(name)
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// HeaderValues returns every value of the named header in wire order.
func (r *Response) HeaderValues(name string) []string {
	name = strings.ToLower(name)
	var values []string
	for _, h := range r.Headers {
		if h.Name == name {
			values = append(values, h.Value)
		}
	}
	return values
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
