package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"viewbinding-generator/binder"
	"viewbinding-generator/internal/synth"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "viewbinding.yaml"

// Config is the generator configuration.
type Config struct {
	Version      string   `yaml:"version"`
	Marker       string   `yaml:"marker"`
	LookupMethod string   `yaml:"lookup_method"`
	Unbinder     Unbinder `yaml:"unbinder"`
	OutputDir    string   `yaml:"output_dir,omitempty"`
	StableOrder  bool     `yaml:"stable_order"`
	Packages     []string `yaml:"packages"`
}

// Unbinder names the capability generated types implement.
type Unbinder struct {
	Path   string `yaml:"path"`
	Name   string `yaml:"name"`
	Method string `yaml:"method,omitempty"`
}

// Capability converts u for synthesis.
func (u Unbinder) Capability() synth.Capability {
	return synth.Capability{
		Path:   u.Path,
		Name:   u.Name,
		Method: u.Method,
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path if it exists and returns defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	c, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Marker == "" {
		c.Marker = binder.Marker
	}

	if c.LookupMethod == "" {
		c.LookupMethod = "FindViewByID"
	}

	def := synth.DefaultCapability()
	if c.Unbinder.Path == "" && c.Unbinder.Name == "" {
		c.Unbinder.Path = def.Path
		c.Unbinder.Name = def.Name
	}

	if c.Unbinder.Method == "" {
		c.Unbinder.Method = def.Method
	}

	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
