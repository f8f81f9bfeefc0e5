// Package config provides configuration loading for hosts embedding the
// toolkit.
//
// ToolkitConfig holds the sections the toolkit itself consumes (logging,
// wire); hosts embed it and extend with their own. Load fills a config
// struct from a YAML file, an optional .env file, and the process
// environment, in rising priority:
//
//	var cfg GatewayConfig
//	if err := config.Load("gateway", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
//
// Environment variables address nested sections with underscores, e.g.
// WIRE_BUNDLE sets the wire section's bundle field.
package config
