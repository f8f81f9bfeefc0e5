package httpwire

import (
	"fmt"
	"strings"

	"github.com/authkit-dev/authkit/trust"
	"github.com/authkit-dev/authkit/version"
)

// Config configures the wire adapter.
type Config struct {
	// TLS, when set, is the process-wide transport security override: it
	// is handed to the engine verbatim on every call and capability
	// probing is skipped entirely. Fixed at construction; this is
	// runtime material, not file configuration.
	TLS *trust.Options `yaml:"-" mapstructure:"-"`

	// Bundle optionally points the default capability provider at a PEM
	// file of trusted CA certificates. Empty means the system roots.
	// Ignored when a provider is injected with WithCapabilities.
	Bundle string `yaml:"bundle" mapstructure:"bundle"`

	// Version is the version component of the identifying User-Agent
	// header. Defaults to the build's resolved version, which falls back
	// to "0.0.0" when no build metadata exists.
	Version string `yaml:"version" mapstructure:"version"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = version.String()
	}
}

// Validate checks that the configuration is usable. The version lands in a
// header value, so it must not carry whitespace.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Version, " \t\r\n") {
		return NewValidationError(fmt.Sprintf("version %q must not contain whitespace", c.Version))
	}
	return nil
}
