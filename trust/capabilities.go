package trust

import (
	"crypto/x509"
	"fmt"
	"os"
	"sync"
)

// CapabilityProvider reports whether the running process has the material
// needed for verified TLS. Probes never fail; missing or unloadable material
// reports the capability as absent.
type CapabilityProvider interface {
	// HasCertificateBundle reports whether a trusted certificate pool is
	// available.
	HasCertificateBundle() bool

	// HasHostnameVerifier reports whether a hostname check is available.
	HasHostnameVerifier() bool

	// CertificateBundle returns the trusted pool, or nil when absent.
	CertificateBundle() *x509.CertPool

	// HostnameVerifier returns the hostname check, or nil when absent.
	HostnameVerifier() HostnameVerifier
}

// VerifyCertHostname is the default hostname verifier, backed by the
// certificate's own hostname matching rules.
func VerifyCertHostname(cert *x509.Certificate, host string) error {
	return cert.VerifyHostname(host)
}

// SystemCapabilities probes the running process for verification material.
// The bundle comes from BundleFile when set, otherwise from the system root
// pool. Activation happens once, on first probe, and is safe for concurrent
// use; a failed activation reports the bundle capability as absent rather
// than returning an error.
type SystemCapabilities struct {
	// BundleFile optionally points at a PEM bundle of trusted CA
	// certificates. Empty means use the system roots.
	BundleFile string

	once sync.Once
	pool *x509.CertPool
	err  error
}

var _ CapabilityProvider = (*SystemCapabilities)(nil)

// HasCertificateBundle reports whether a trusted pool could be loaded.
func (s *SystemCapabilities) HasCertificateBundle() bool {
	s.activate()
	return s.pool != nil
}

// CertificateBundle returns the loaded pool, or nil when activation failed.
func (s *SystemCapabilities) CertificateBundle() *x509.CertPool {
	s.activate()
	return s.pool
}

// HasHostnameVerifier reports true: hostname matching is always available
// through the x509 machinery.
func (s *SystemCapabilities) HasHostnameVerifier() bool { return true }

// HostnameVerifier returns the default certificate hostname check.
func (s *SystemCapabilities) HostnameVerifier() HostnameVerifier {
	return VerifyCertHostname
}

// Err returns the bundle activation failure, if any. A non-nil error means
// the certificate bundle capability is reported absent.
func (s *SystemCapabilities) Err() error {
	s.activate()
	return s.err
}

func (s *SystemCapabilities) activate() {
	s.once.Do(func() {
		if s.BundleFile == "" {
			pool, err := x509.SystemCertPool()
			if err != nil {
				s.err = fmt.Errorf("trust: load system roots: %w", err)
				return
			}
			s.pool = pool
			return
		}

		pem, err := os.ReadFile(s.BundleFile)
		if err != nil {
			s.err = fmt.Errorf("trust: read bundle %s: %w", s.BundleFile, err)
			return
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			s.err = fmt.Errorf("trust: bundle %s contains no usable certificates", s.BundleFile)
			return
		}
		s.pool = pool
	})
}

// StaticCapabilities serves fixed verification material. Useful in tests and
// for callers that embed a provider bundle directly.
type StaticCapabilities struct {
	Pool     *x509.CertPool
	Verifier HostnameVerifier
}

var _ CapabilityProvider = StaticCapabilities{}

func (s StaticCapabilities) HasCertificateBundle() bool { return s.Pool != nil }

func (s StaticCapabilities) HasHostnameVerifier() bool { return s.Verifier != nil }

func (s StaticCapabilities) CertificateBundle() *x509.CertPool { return s.Pool }

func (s StaticCapabilities) HostnameVerifier() HostnameVerifier { return s.Verifier }
