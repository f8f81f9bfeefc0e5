package trust

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// VerifyMode selects how the peer certificate chain is treated.
type VerifyMode int

const (
	// VerifyNone is the zero mode: no explicit verification settings. The
	// transport engine's own defaults apply.
	VerifyNone VerifyMode = iota

	// VerifyPeer requires the peer chain to verify against Roots.
	VerifyPeer
)

// DefaultVerifyDepth is the chain depth bound placed on resolved descriptors.
// Engines with a depth knob honor it; engines without one (crypto/tls has
// none) carry it as advisory.
const DefaultVerifyDepth = 99

// HostnameVerifier checks that a peer certificate is valid for host.
type HostnameVerifier func(cert *x509.Certificate, host string) error

// Options is the transport security descriptor handed to the engine
// alongside each request. The zero value means unset.
type Options struct {
	// Mode selects peer chain verification.
	Mode VerifyMode

	// Depth bounds the peer chain length.
	Depth int

	// Roots is the trusted certificate pool used to verify the peer.
	Roots *x509.CertPool

	// Host is the hostname the peer certificate must be valid for,
	// normally taken from the request URL.
	Host string

	// CheckHostname validates the peer leaf certificate against Host.
	CheckHostname HostnameVerifier
}

// IsZero reports whether the descriptor carries no settings at all.
func (o Options) IsZero() bool {
	return o.Mode == VerifyNone && o.Depth == 0 && o.Roots == nil &&
		o.Host == "" && o.CheckHostname == nil
}

// TLSConfig maps the descriptor onto a *tls.Config for engines built on
// crypto/tls. Returns nil for the zero descriptor so callers can hand the
// engine its own default.
//
// The hostname hook runs through tls.Config.VerifyConnection, which executes
// after the standard chain and hostname checks. A custom verifier can
// therefore tighten verification but never loosen what crypto/tls enforces.
func (o Options) TLSConfig() *tls.Config {
	if o.IsZero() {
		return nil
	}

	cfg := &tls.Config{
		RootCAs:    o.Roots,
		MinVersion: tls.VersionTLS12,
	}

	if o.CheckHostname != nil {
		check := o.CheckHostname
		fallbackHost := o.Host
		cfg.VerifyConnection = func(cs tls.ConnectionState) error {
			if len(cs.PeerCertificates) == 0 {
				return fmt.Errorf("trust: no peer certificate presented")
			}
			host := cs.ServerName
			if host == "" {
				host = fallbackHost
			}
			return check(cs.PeerCertificates[0], host)
		}
	}

	return cfg
}
