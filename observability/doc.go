// Package observability provides OpenTelemetry tracing and metrics for
// outbound wire calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanWireCall)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	metrics.RecordCallEnd(ctx, "keycloak", "GET", "200", duration)
//
// Init installs the providers globally; libraries in this module only ever
// read the globals, so a host that never calls Init pays nothing.
package observability
