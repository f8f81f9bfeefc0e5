package logger

import (
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("authkit")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.name != "authkit" {
		t.Errorf("expected name 'authkit', got %q", l.name)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "wire")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.name != "wire" {
		t.Errorf("expected name 'wire', got %q", l.name)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	if New(cfg, "wire") == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if NewFromEnv("env-kit") == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must be safe to use without any configuration.
	l.Info("discarded")
	l.WithError(nil).Error("discarded")
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("authkit")
	cl := l.WithComponent("httpwire")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.name != "authkit" {
		t.Errorf("name should be preserved, got %q", cl.name)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("authkit")
	if l.WithFields(map[string]interface{}{"key": "value"}) == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("authkit")
	if l.WithError(nil) == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFieldsBuilder(t *testing.T) {
	m := Fields("host", "login.example.com", "status", 200)
	if m["host"] != "login.example.com" {
		t.Errorf("expected host field, got %v", m["host"])
	}
	if m["status"] != 200 {
		t.Errorf("expected status field, got %v", m["status"])
	}
}

func TestFieldsBuilderOddArguments(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map for dangling key, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("token_fetch", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format json, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps on by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid_console", Config{Level: "debug", Format: "console"}, false},
		{"bad_level", Config{Level: "loud", Format: "json"}, true},
		{"bad_format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
