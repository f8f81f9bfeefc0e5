package httpwire

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"strings"
)

// normalizeResponse converts the engine's raw result into the adapter's
// uniform response: status verbatim, header names lower-cased and sorted,
// body drained into one contiguous byte sequence. The raw body is always
// closed.
func normalizeResponse(resp *http.Response) (*Response, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpwire: read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    lowerHeaders(resp.Header),
		Body:       body,
	}, nil
}

// lowerHeaders re-emits engine headers as a list with lower-cased names,
// sorted by name so the output is deterministic where http.Header's map
// iteration is not. Values of a repeated name keep their wire order.
func lowerHeaders(h http.Header) []Header {
	headers := make([]Header, 0, len(h))
	for name, values := range h {
		lower := strings.ToLower(name)
		for _, v := range values {
			headers = append(headers, Header{Name: lower, Value: v})
		}
	}
	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].Name < headers[j].Name
	})
	return headers
}

// isDialFailure reports whether the failure chain carries a dial-phase
// network error.
func isDialFailure(err error) bool {
	var op *net.OpError
	return errors.As(err, &op) && op.Op == "dial"
}

// normalizeError collapses the engine's dial-phase failure family into the
// canonical connection-refused error. Refused, unreachable, and
// name-resolution failures all land there: callers only branch on "could
// not connect" versus everything else. Any other failure passes through
// unchanged.
func normalizeError(err error) error {
	if isDialFailure(err) {
		return NewConnectionRefusedError(err)
	}
	return err
}
