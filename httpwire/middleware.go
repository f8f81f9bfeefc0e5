package httpwire

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/authkit-dev/authkit/logger"
	"github.com/authkit-dev/authkit/observability"
	"github.com/authkit-dev/authkit/trust"
)

// Middleware decorates an Engine. Middleware sits strictly outside the
// normalizer: it may observe an exchange, but the result the caller sees
// is untouched.
type Middleware func(Engine) Engine

// WithLogging logs every exchange with a fresh correlation id. The
// normalizer itself never logs; call logging is opt-in through this
// decorator.
func WithLogging(log *logger.Logger) Middleware {
	return func(next Engine) Engine {
		wireLog := log.WithComponent("wire")
		return EngineFunc(func(req *http.Request, opts trust.Options) (*http.Response, error) {
			callID := uuid.NewString()
			start := time.Now()

			wireLog.Debug("wire call started", map[string]interface{}{
				logger.FieldCallID: callID,
				logger.FieldMethod: req.Method,
				logger.FieldHost:   req.URL.Host,
			})

			resp, err := next.Do(req, opts)

			fields := map[string]interface{}{
				logger.FieldCallID:   callID,
				logger.FieldMethod:   req.Method,
				logger.FieldHost:     req.URL.Host,
				logger.FieldDuration: time.Since(start).Milliseconds(),
			}
			if err != nil {
				fields[logger.FieldError] = err.Error()
				wireLog.Error("wire call failed", fields)
				return nil, err
			}
			fields[logger.FieldStatus] = resp.StatusCode
			wireLog.Debug("wire call finished", fields)
			return resp, nil
		})
	}
}

// WithTracing opens one OpenTelemetry span per exchange.
func WithTracing(service string) Middleware {
	return func(next Engine) Engine {
		return EngineFunc(func(req *http.Request, opts trust.Options) (*http.Response, error) {
			ctx, span := observability.StartSpan(req.Context(), observability.SpanWireCall)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrServiceName, service)
			observability.SetSpanAttribute(ctx, observability.AttrMethod, req.Method)
			observability.SetSpanAttribute(ctx, observability.AttrHost, req.URL.Host)

			resp, err := next.Do(req.WithContext(ctx), opts)
			if err != nil {
				observability.SetSpanError(ctx, err)
				return nil, err
			}
			observability.SetSpanAttribute(ctx, observability.AttrStatusCode, resp.StatusCode)
			return resp, nil
		})
	}
}

// WithMetrics records call count, duration, and failures per exchange.
func WithMetrics(m *observability.Metrics, service string) Middleware {
	return func(next Engine) Engine {
		return EngineFunc(func(req *http.Request, opts trust.Options) (*http.Response, error) {
			ctx := req.Context()
			start := time.Now()
			m.RecordCallStart(ctx)

			resp, err := next.Do(req, opts)
			if err != nil {
				m.RecordCallEnd(ctx, service, req.Method, "error", time.Since(start))
				m.RecordError(ctx, errorType(err), service)
				return nil, err
			}
			m.RecordCallEnd(ctx, service, req.Method, strconv.Itoa(resp.StatusCode), time.Since(start))
			return resp, nil
		})
	}
}

// errorType buckets an engine failure for the error counter. Middleware
// runs below the normalizer, so raw engine failures are bucketed with the
// same dial check the normalizer uses.
func errorType(err error) string {
	if isDialFailure(err) {
		return ErrCodeConnectionRefused.String()
	}
	return "other"
}
