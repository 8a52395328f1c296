// Package config provides configuration loading and management for
// karyonto.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cytogenlab/karyonto/export"
	"github.com/cytogenlab/karyonto/vocabulary/karyotype"
)

// Config represents the complete karyonto configuration.
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Output   OutputConfig   `yaml:"output"`
	Bands    BandsConfig    `yaml:"bands"`
}

// OntologyConfig configures the generated ontology's identity.
type OntologyConfig struct {
	// IRI is the ontology IRI (default: the karyotype namespace).
	IRI string `yaml:"iri"`
	// Version is the owl:versionInfo annotation (empty = minted per build).
	Version string `yaml:"version"`
}

// OutputConfig configures serialization.
type OutputConfig struct {
	// Format is the export format: "turtle" or "functional".
	Format string `yaml:"format"`
	// Path is the output file path (empty = stdout).
	Path string `yaml:"path"`
}

// BandsConfig configures the band specification source.
type BandsConfig struct {
	// Dir holds YAML band spec files overriding the built-in ISCN data
	// (empty = built-in 400-band data for all 24 chromosomes).
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			IRI: karyotype.Namespace,
		},
		Output: OutputConfig{
			Format: string(export.FormatTurtle),
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Ontology.IRI == "" {
		return fmt.Errorf("ontology.iri is required")
	}
	if _, ok := export.GetFormatInfo(export.Format(c.Output.Format)); !ok {
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}
	if c.Bands.Dir != "" {
		info, err := os.Stat(c.Bands.Dir)
		if err != nil {
			return fmt.Errorf("bands.dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("bands.dir %q is not a directory", c.Bands.Dir)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Ontology.IRI != "" {
		c.Ontology.IRI = other.Ontology.IRI
	}
	if other.Ontology.Version != "" {
		c.Ontology.Version = other.Ontology.Version
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Bands.Dir != "" {
		c.Bands.Dir = other.Bands.Dir
	}
}
