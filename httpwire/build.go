package httpwire

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	headerUserAgent   = "User-Agent"
	headerContentType = "Content-Type"

	// defaultContentType applies when a body is present and the caller
	// supplied no content-type header.
	defaultContentType = "text/plain"
)

// buildRequest converts the adapter request into the engine's canonical
// shape. It is pure transcoding: no network activity, no mutation of the
// input, and no failure modes beyond ill-formed input. URLs are validated
// only as far as the engine shape requires; whether they are reachable or
// sensible is the engine's concern.
func buildRequest(ctx context.Context, req Request, userAgent string) (*http.Request, error) {
	if !req.Method.valid() {
		return nil, NewValidationError(fmt.Sprintf("method %q not supported, use GET or POST", req.Method))
	}

	headers := req.Headers
	contentType := ""
	var body io.Reader
	if req.Body != nil {
		headers, contentType = extractContentType(headers)
		if contentType == "" {
			contentType = defaultContentType
		}
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	// Caller headers go in list order. Values of a repeated name reach the
	// engine in that order; how duplicates hit the wire is engine-defined,
	// not adapter-defined.
	for _, h := range headers {
		httpReq.Header.Add(h.Name, h.Value)
	}

	if contentType != "" {
		httpReq.Header.Set(headerContentType, contentType)
	}

	// The identifying header is appended after caller headers so engines
	// that pick the first occurrence keep a caller-supplied value.
	httpReq.Header.Add(headerUserAgent, userAgent)

	return httpReq, nil
}

// extractContentType removes content-type entries from the header list and
// returns the remaining list plus the first entry's value. The name match
// is case-insensitive: Go's header canonicalization would otherwise
// reinsert a caller-cased Content-Type next to the default one, and the
// builder's contract is exactly one content type per request with a body.
func extractContentType(headers []Header) ([]Header, string) {
	value := ""
	remaining := make([]Header, 0, len(headers))
	for _, h := range headers {
		if strings.EqualFold(h.Name, headerContentType) {
			if value == "" {
				value = h.Value
			}
			continue
		}
		remaining = append(remaining, h)
	}
	return remaining, value
}
