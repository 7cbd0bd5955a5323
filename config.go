package defaultgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a generation run.
type Config struct {
	// Packages are the package patterns to scan for directives, with
	// go command semantics (".", "./...", import paths).
	Packages []string `yaml:"packages" validate:"required,min=1,dive,required"`

	// Dir is the working directory for package loading. Empty means
	// the current directory.
	Dir string `yaml:"dir"`

	// OutDir overrides the output directory. By default the generated
	// file is written next to the factory interface, in its package
	// directory.
	OutDir string `yaml:"out_dir"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config file. Unknown keys are rejected so a
// typo does not silently fall back to a default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func unmarshalStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
