package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"xsd-validator-generator/internal/common"
	"xsd-validator-generator/internal/convert"
	"xsd-validator-generator/internal/naming"
)

// CurrentVersion is the configuration format version written by this tool.
const CurrentVersion = "1"

// ErrInvalidOverride is returned for a malformed command line entry.
var ErrInvalidOverride = errors.New("invalid override")

// Config is the generator configuration.
type Config struct {
	Version        string `yaml:"version"`
	NamingStrategy string `yaml:"naming_strategy,omitempty"`

	// Namespaces maps XML namespaces to class namespaces.
	Namespaces map[string]string `yaml:"namespaces"`
	// Destinations maps class namespaces to output directories.
	Destinations map[string]string `yaml:"destinations,omitempty"`
	// Aliases maps XML namespace -> type or element name -> target type.
	Aliases map[string]map[string]string `yaml:"aliases,omitempty"`

	Output Output `yaml:"output,omitempty"`
}

// Output selects how metadata files are written.
type Output struct {
	// SingleFile, when set, is the one file receiving every class.
	SingleFile string `yaml:"single_file,omitempty"`
}

// New returns an empty configuration with defaults applied.
func New() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.NamingStrategy == "" {
		cfg.NamingStrategy = naming.StrategyShort
	}

	if cfg.Namespaces == nil {
		cfg.Namespaces = make(map[string]string)
	}

	if cfg.Destinations == nil {
		cfg.Destinations = make(map[string]string)
	}

	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]map[string]string)
	}

	for xmlns, ns := range cfg.Namespaces {
		cfg.Namespaces[xmlns] = strings.Trim(ns, common.ClassSeparator)
	}
}

// AddNamespaces applies "xmlns;phpns" entries.
func (c *Config) AddNamespaces(entries []string) error {
	for _, e := range entries {
		parts, err := split(e, 2, "xmlns;phpns")
		if err != nil {
			return err
		}

		c.Namespaces[parts[0]] = strings.Trim(parts[1], common.ClassSeparator)
	}

	return nil
}

// AddDestinations applies "phpns;dir" entries.
func (c *Config) AddDestinations(entries []string) error {
	for _, e := range entries {
		parts, err := split(e, 2, "phpns;dir")
		if err != nil {
			return err
		}

		c.Destinations[parts[0]] = parts[1]
	}

	return nil
}

// AddAliases applies "xmlns;name;alias" entries.
func (c *Config) AddAliases(entries []string) error {
	for _, e := range entries {
		parts, err := split(e, 3, "xmlns;name;alias")
		if err != nil {
			return err
		}

		if c.Aliases[parts[0]] == nil {
			c.Aliases[parts[0]] = make(map[string]string)
		}

		c.Aliases[parts[0]][parts[1]] = parts[2]
	}

	return nil
}

func split(entry string, n int, format string) ([]string, error) {
	parts := strings.Split(entry, ";")
	if len(parts) != n {
		return nil, fmt.Errorf("%w %q: want %s", ErrInvalidOverride, entry, format)
	}

	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" && i < n-1 {
			return nil, fmt.Errorf("%w %q: empty field in %s", ErrInvalidOverride, entry, format)
		}
	}

	return parts, nil
}

// Converter returns the converter settings of c.
func (c *Config) Converter() (convert.Config, error) {
	strategy, err := naming.New(c.NamingStrategy)
	if err != nil {
		return convert.Config{}, err
	}

	return convert.Config{
		Namespaces: c.Namespaces,
		Aliases:    c.Aliases,
		Naming:     strategy,
	}, nil
}
