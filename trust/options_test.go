package trust

import (
	"crypto/tls"
	"crypto/x509"
	"testing"

	"github.com/authkit-dev/authkit/trust/tlstest"
)

func TestOptions_IsZero_Zero(t *testing.T) {
	var o Options
	if !o.IsZero() {
		t.Error("zero Options should report IsZero")
	}
}

func TestOptions_IsZero_Set(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"mode", Options{Mode: VerifyPeer}},
		{"depth", Options{Depth: DefaultVerifyDepth}},
		{"roots", Options{Roots: x509.NewCertPool()}},
		{"host", Options{Host: "example.com"}},
		{"check", Options{CheckHostname: VerifyCertHostname}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.IsZero() {
				t.Error("Options with a field set should not report IsZero")
			}
		})
	}
}

func TestOptions_TLSConfig_Zero(t *testing.T) {
	var o Options
	if cfg := o.TLSConfig(); cfg != nil {
		t.Fatal("zero Options should map to a nil tls.Config")
	}
}

func TestOptions_TLSConfig_Verified(t *testing.T) {
	ca := tlstest.New(t)
	o := Options{
		Mode:  VerifyPeer,
		Depth: DefaultVerifyDepth,
		Roots: ca.Pool,
	}

	cfg := o.TLSConfig()
	if cfg == nil {
		t.Fatal("expected non-nil tls.Config")
	}
	if cfg.RootCAs == nil {
		t.Error("expected RootCAs to be set")
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected MinVersion=TLS12, got %d", cfg.MinVersion)
	}
	if cfg.VerifyConnection != nil {
		t.Error("expected no hostname hook without CheckHostname")
	}
}

func leafCert(t *testing.T, ca *tlstest.Authority) *x509.Certificate {
	t.Helper()
	leaf, err := x509.ParseCertificate(ca.ServerTLS.Certificate[0])
	if err != nil {
		t.Fatalf("parse leaf: %v", err)
	}
	return leaf
}

func TestOptions_TLSConfig_HostnameHook(t *testing.T) {
	ca := tlstest.New(t)
	leaf := leafCert(t, ca)

	o := Options{
		Mode:          VerifyPeer,
		Roots:         ca.Pool,
		Host:          "localhost",
		CheckHostname: VerifyCertHostname,
	}
	cfg := o.TLSConfig()
	if cfg.VerifyConnection == nil {
		t.Fatal("expected hostname hook to be installed")
	}

	ok := tls.ConnectionState{ServerName: "localhost", PeerCertificates: []*x509.Certificate{leaf}}
	if err := cfg.VerifyConnection(ok); err != nil {
		t.Errorf("expected localhost to verify, got %v", err)
	}

	bad := tls.ConnectionState{ServerName: "evil.example", PeerCertificates: []*x509.Certificate{leaf}}
	if err := cfg.VerifyConnection(bad); err == nil {
		t.Error("expected mismatched hostname to fail")
	}
}

func TestOptions_TLSConfig_HostFallback(t *testing.T) {
	ca := tlstest.New(t)
	leaf := leafCert(t, ca)

	o := Options{
		Mode:          VerifyPeer,
		Roots:         ca.Pool,
		Host:          "localhost",
		CheckHostname: VerifyCertHostname,
	}
	cfg := o.TLSConfig()

	// No SNI on the connection: the descriptor's bound host applies.
	cs := tls.ConnectionState{PeerCertificates: []*x509.Certificate{leaf}}
	if err := cfg.VerifyConnection(cs); err != nil {
		t.Errorf("expected bound host to verify, got %v", err)
	}
}

func TestOptions_TLSConfig_NoPeerCertificate(t *testing.T) {
	o := Options{
		Mode:          VerifyPeer,
		Roots:         x509.NewCertPool(),
		Host:          "localhost",
		CheckHostname: VerifyCertHostname,
	}
	cfg := o.TLSConfig()

	if err := cfg.VerifyConnection(tls.ConnectionState{ServerName: "localhost"}); err == nil {
		t.Error("expected error when no peer certificate is presented")
	}
}
