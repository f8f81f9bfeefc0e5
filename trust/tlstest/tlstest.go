// Package tlstest generates throwaway certificate authorities for tests.
// All material comes from Go's crypto stdlib; no external tools needed.
// Generated files live in t.TempDir() and clean up with the test.
//
// Usage:
//
//	func TestVerifiedCall(t *testing.T) {
//	    ca := tlstest.New(t)
//	    // ca.BundleFile is a valid PEM bundle, ca.ServerTLS a leaf for localhost
//	}
package tlstest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Authority is a self-signed CA with one issued server certificate.
type Authority struct {
	// BundleFile is the path to a PEM file holding the CA certificate,
	// suitable for trust.SystemCapabilities.BundleFile.
	BundleFile string

	// CACert is the parsed CA certificate.
	CACert *x509.Certificate

	// Pool contains the CA certificate for client-side verification.
	Pool *x509.CertPool

	// ServerTLS is a ready-to-use leaf certificate valid for localhost,
	// 127.0.0.1, and [::1].
	ServerTLS tls.Certificate
}

// New creates a self-signed CA and a server certificate issued by it.
func New(t testing.TB) *Authority {
	t.Helper()
	dir := t.TempDir()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("tlstest: generate CA key: %v", err)
	}

	caTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"authkit test CA"},
		},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("tlstest: create CA cert: %v", err)
	}

	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		t.Fatalf("tlstest: parse CA cert: %v", err)
	}

	bundleFile := filepath.Join(dir, "ca.pem")
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER})
	if err := os.WriteFile(bundleFile, caPEM, 0o600); err != nil {
		t.Fatalf("tlstest: write bundle: %v", err)
	}

	leafKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("tlstest: generate leaf key: %v", err)
	}

	leafTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject: pkix.Name{
			Organization: []string{"authkit test"},
			CommonName:   "localhost",
		},
		DNSNames:    []string{"localhost"},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		NotBefore:   time.Now().Add(-time.Hour),
		NotAfter:    time.Now().Add(24 * time.Hour),
		KeyUsage:    x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	leafDER, err := x509.CreateCertificate(rand.Reader, leafTemplate, caCert, &leafKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("tlstest: create leaf cert: %v", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(leafKey)
	if err != nil {
		t.Fatalf("tlstest: marshal leaf key: %v", err)
	}

	leafPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: leafDER})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	serverTLS, err := tls.X509KeyPair(leafPEM, keyPEM)
	if err != nil {
		t.Fatalf("tlstest: build key pair: %v", err)
	}

	pool := x509.NewCertPool()
	pool.AddCert(caCert)

	return &Authority{
		BundleFile: bundleFile,
		CACert:     caCert,
		Pool:       pool,
		ServerTLS:  serverTLS,
	}
}

// WriteCorruptBundle writes a file that looks like PEM but holds no usable
// certificate. Useful for testing activation failure paths.
func WriteCorruptBundle(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corrupt-ca.pem")
	content := []byte("-----BEGIN CERTIFICATE-----\nnot-valid-base64-data\n-----END CERTIFICATE-----\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("tlstest: write corrupt bundle: %v", err)
	}
	return path
}
