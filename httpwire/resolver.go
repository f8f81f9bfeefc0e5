package httpwire

import (
	"net/url"

	"github.com/authkit-dev/authkit/trust"
)

// resolveSecurity produces the transport security options for one call.
//
// Resolution order:
//
//  1. A Config.TLS override wins verbatim and skips probing entirely.
//  2. Otherwise both capabilities are probed: the trusted certificate
//     bundle and the hostname verifier. Probes never fail; absence only
//     reports false.
//  3. Both present: a full verification descriptor bound to the request
//     URL's hostname.
//  4. Either absent: unset options, leaving the engine's own default in
//     charge.
//
// Step 4 is a deliberate compatibility trade-off, not a bug: environments
// without verification material keep working, and the security posture
// degrades silently rather than failing the call. Hosts that want the
// posture visible should check Component health or configure Config.TLS
// explicitly.
func (a *Adapter) resolveSecurity(u *url.URL) trust.Options {
	if a.config.TLS != nil {
		return *a.config.TLS
	}

	if !a.caps.HasCertificateBundle() || !a.caps.HasHostnameVerifier() {
		return trust.Options{}
	}

	return trust.Options{
		Mode:          trust.VerifyPeer,
		Depth:         trust.DefaultVerifyDepth,
		Roots:         a.caps.CertificateBundle(),
		Host:          u.Hostname(),
		CheckHostname: a.caps.HostnameVerifier(),
	}
}
