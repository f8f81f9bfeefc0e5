// Package httpwire is the outbound HTTP adapter identity flows use to talk
// to OAuth/OIDC providers: token endpoints, discovery documents, JWKS sets,
// and userinfo.
//
// Every call composes the same three steps:
//
//   - build: method, URL, optional body, and an ordered header list become
//     the engine's request shape; the identifying User-Agent header is
//     appended after caller headers, and when a body is present the content
//     type is pulled out of the header list so it is never duplicated
//   - resolve: transport security options are decided per call. An
//     explicit Config.TLS override wins verbatim; otherwise verified TLS is
//     enabled only when both the certificate-bundle and hostname-verifier
//     capabilities are present
//   - normalize: status code verbatim, header names lower-cased, body
//     materialized as one contiguous byte slice; dial failures collapse to
//     the canonical connection-refused error and every other failure passes
//     through unchanged
//
// # Security posture
//
// When no override is configured and either verification capability is
// missing, calls proceed with the engine's default transport security
// instead of failing. This keeps the adapter usable in environments without
// verification material and is intentional: capability probing never raises,
// it only degrades. With the stock NetEngine the fallback still verifies
// against the system roots; an engine configured without verification gets
// none at all. Component health surfaces the degraded posture for hosts
// that want it visible.
//
// # Usage
//
//	wire, err := httpwire.New(httpwire.Config{Bundle: "/etc/authkit/ca.pem"})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := wire.Get(ctx, "https://login.example.com/.well-known/openid-configuration")
//	if httpwire.IsConnectionRefused(err) {
//	    // provider unreachable
//	}
//
// The adapter does not retry, redirect, pool, or time out on its own; those
// belong to the engine. It keeps no state between calls and is safe for
// concurrent use.
package httpwire
