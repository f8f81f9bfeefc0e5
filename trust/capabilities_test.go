package trust

import (
	"sync"
	"testing"

	"github.com/authkit-dev/authkit/trust/tlstest"
)

func TestSystemCapabilities_BundleFile(t *testing.T) {
	ca := tlstest.New(t)
	caps := &SystemCapabilities{BundleFile: ca.BundleFile}

	if !caps.HasCertificateBundle() {
		t.Fatal("expected bundle capability with a valid PEM file")
	}
	if caps.CertificateBundle() == nil {
		t.Fatal("expected non-nil pool")
	}
	if err := caps.Err(); err != nil {
		t.Errorf("unexpected activation error: %v", err)
	}
}

func TestSystemCapabilities_MissingFile(t *testing.T) {
	caps := &SystemCapabilities{BundleFile: "/nonexistent/ca.pem"}

	if caps.HasCertificateBundle() {
		t.Error("missing bundle file should report capability absent")
	}
	if caps.CertificateBundle() != nil {
		t.Error("expected nil pool for missing bundle file")
	}
	if caps.Err() == nil {
		t.Error("expected activation error to be recorded")
	}
	// Probing again stays absent and never panics.
	if caps.HasCertificateBundle() {
		t.Error("repeated probe should stay absent")
	}
}

func TestSystemCapabilities_CorruptBundle(t *testing.T) {
	path := tlstest.WriteCorruptBundle(t)
	caps := &SystemCapabilities{BundleFile: path}

	if caps.HasCertificateBundle() {
		t.Error("corrupt bundle should report capability absent")
	}
	if caps.Err() == nil {
		t.Error("expected activation error for corrupt bundle")
	}
}

func TestSystemCapabilities_SystemRoots(t *testing.T) {
	caps := &SystemCapabilities{}

	has := caps.HasCertificateBundle()
	pool := caps.CertificateBundle()
	if has != (pool != nil) {
		t.Errorf("inconsistent probes: has=%v pool=%v", has, pool != nil)
	}
	if !has && caps.Err() == nil {
		t.Error("absent system roots must record an activation error")
	}
}

func TestSystemCapabilities_ActivatesOnce(t *testing.T) {
	ca := tlstest.New(t)
	caps := &SystemCapabilities{BundleFile: ca.BundleFile}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			caps.HasCertificateBundle()
		}()
	}
	wg.Wait()

	first := caps.CertificateBundle()
	second := caps.CertificateBundle()
	if first != second {
		t.Error("activation should load the pool exactly once")
	}
}

func TestSystemCapabilities_HostnameVerifier(t *testing.T) {
	caps := &SystemCapabilities{}
	if !caps.HasHostnameVerifier() {
		t.Fatal("hostname verification should always be available")
	}
	if caps.HostnameVerifier() == nil {
		t.Fatal("expected non-nil verifier")
	}
}

func TestVerifyCertHostname(t *testing.T) {
	ca := tlstest.New(t)
	leaf := leafCert(t, ca)

	if err := VerifyCertHostname(leaf, "localhost"); err != nil {
		t.Errorf("expected localhost to match, got %v", err)
	}
	if err := VerifyCertHostname(leaf, "evil.example"); err == nil {
		t.Error("expected mismatched host to fail")
	}
}

func TestStaticCapabilities(t *testing.T) {
	ca := tlstest.New(t)

	tests := []struct {
		name        string
		caps        StaticCapabilities
		hasBundle   bool
		hasVerifier bool
	}{
		{"zero", StaticCapabilities{}, false, false},
		{"pool_only", StaticCapabilities{Pool: ca.Pool}, true, false},
		{"verifier_only", StaticCapabilities{Verifier: VerifyCertHostname}, false, true},
		{"both", StaticCapabilities{Pool: ca.Pool, Verifier: VerifyCertHostname}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.HasCertificateBundle(); got != tt.hasBundle {
				t.Errorf("HasCertificateBundle() = %v, want %v", got, tt.hasBundle)
			}
			if got := tt.caps.HasHostnameVerifier(); got != tt.hasVerifier {
				t.Errorf("HasHostnameVerifier() = %v, want %v", got, tt.hasVerifier)
			}
		})
	}
}
