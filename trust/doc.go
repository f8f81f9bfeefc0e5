// Package trust provides transport security descriptors for outbound calls.
//
// It defines the verification options that httpwire resolves per request and
// the capability probes that decide whether verified TLS can be enabled at
// all. Probing never fails: missing material simply reports the capability
// as absent.
//
// # Options
//
//	caps := &trust.SystemCapabilities{BundleFile: "/etc/authkit/ca.pem"}
//	if caps.HasCertificateBundle() && caps.HasHostnameVerifier() {
//	    opts := trust.Options{
//	        Mode:          trust.VerifyPeer,
//	        Depth:         trust.DefaultVerifyDepth,
//	        Roots:         caps.CertificateBundle(),
//	        Host:          "login.example.com",
//	        CheckHostname: caps.HostnameVerifier(),
//	    }
//	    tlsConfig := opts.TLSConfig()
//	    _ = tlsConfig
//	}
//
// The zero Options value means "unset": the transport engine's own defaults
// apply and no descriptor is installed.
package trust
