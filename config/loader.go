package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts the file probes the loader performs. Tests swap in a
// fake to exercise discovery without touching the disk.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

type diskFS struct{}

func (diskFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (diskFS) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Option customizes Load.
type Option func(*loader)

// WithFileSystem replaces the loader's file access.
func WithFileSystem(fs FileSystem) Option {
	return func(l *loader) { l.fs = fs }
}

// WithConfigFile pins the config file instead of discovering one.
func WithConfigFile(path string) Option {
	return func(l *loader) { l.configFile = path }
}

// WithEnvFile pins the .env file instead of discovering one.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

type loader struct {
	fs         FileSystem
	configFile string
	envFile    string
}

// Load populates cfg for the named host. Sources are layered in priority
// order: process environment over .env file over YAML file. Discovered
// files are optional; a pinned or discovered file that exists but cannot
// be read is an error.
//
// Environment keys map onto nested config paths by splitting on
// underscores, so WIRE_BUNDLE reaches the wire section's bundle field.
func Load(name string, cfg interface{}, opts ...Option) error {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs == nil {
		l.fs = diskFS{}
	}

	if l.configFile == "" {
		l.configFile = discoverFirst(l.fs, configSearchPaths(name))
	}
	if l.envFile == "" {
		l.envFile = discoverFirst(l.fs, envSearchPaths(name))
	}

	v := viper.New()

	if l.configFile != "" && l.fs.Exists(l.configFile) {
		v.SetConfigFile(l.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", l.configFile, err)
		}
	}

	if l.envFile != "" && l.fs.Exists(l.envFile) {
		if err := l.fs.LoadEnv(l.envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", l.envFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnv(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", name, err)
	}
	return nil
}

// configSearchPaths lists config file candidates for a host, most specific
// first.
func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./%s.yml", name),
		fmt.Sprintf("./%s.yaml", name),
		fmt.Sprintf("./config/%s.yml", name),
		fmt.Sprintf("./config/%s.yaml", name),
		"./config.yml",
		"./config.yaml",
		"./config/config.yml",
	}
}

// envSearchPaths lists .env file candidates for a host.
func envSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf(".env.%s", name),
		".env",
	}
}

func discoverFirst(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnv maps every environment variable onto viper keys so nested config
// sections pick up overrides without per-field BindEnv calls.
func bindEnv(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range keyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// keyVariants expands an environment key into the nested viper keys it may
// address. Splits are progressive because section names never contain
// underscores but field names may:
//
//	WIRE_BUNDLE      -> wire_bundle, wire.bundle
//	LOGGING_NO_COLOR -> logging_no_color, logging.no.color, logging.no_color
func keyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) <= 1 {
		return []string{lower}
	}

	variants := []string{lower, strings.ReplaceAll(lower, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	result := make([]string, 0, len(variants))
	for _, variant := range variants {
		if !seen[variant] {
			seen[variant] = true
			result = append(result, variant)
		}
	}
	return result
}
