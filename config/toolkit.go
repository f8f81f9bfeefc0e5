package config

import (
	"fmt"

	"github.com/authkit-dev/authkit/httpwire"
	"github.com/authkit-dev/authkit/logger"
)

// ToolkitConfig carries the configuration every host embedding the toolkit
// needs. Hosts extend it by embedding:
//
//	type GatewayConfig struct {
//	    config.ToolkitConfig `yaml:",inline" mapstructure:",squash"`
//	    Providers []ProviderConfig `yaml:"providers" mapstructure:"providers"`
//	}
type ToolkitConfig struct {
	Name        string          `yaml:"name" mapstructure:"name"`
	Environment string          `yaml:"environment" mapstructure:"environment"`
	Version     string          `yaml:"version" mapstructure:"version"`
	Debug       bool            `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Wire        httpwire.Config `yaml:"wire" mapstructure:"wire"`
}

// Toolkit returns the embedded toolkit configuration. Embedding promotes
// the method, so host config structs can be passed anywhere a toolkit
// config is expected.
func (c *ToolkitConfig) Toolkit() *ToolkitConfig {
	return c
}

// ApplyDefaults fills in zero-value fields. Override this in embedding
// structs and call c.ToolkitConfig.ApplyDefaults() first.
func (c *ToolkitConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	// The host version identifies outbound calls unless the wire section
	// pins its own.
	if c.Wire.Version == "" && c.Version != "" {
		c.Wire.Version = c.Version
	}
	c.Logging.ApplyDefaults()
	c.Wire.ApplyDefaults()
}

// Validate validates the toolkit configuration. Override this in embedding
// structs and call c.ToolkitConfig.Validate() first.
func (c *ToolkitConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Wire.Validate(); err != nil {
		return fmt.Errorf("config.wire: %w", err)
	}
	return nil
}
