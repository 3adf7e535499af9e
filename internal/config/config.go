// Package config loads the optional twoway configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/twoway/pkg/programs"
	"github.com/aretw0/twoway/pkg/runner"
)

// DefaultPath is looked up when no --config flag is given.
const DefaultPath = ".twoway.yaml"

// Config holds settings shared by every command.
type Config struct {
	Program   string     `mapstructure:"program"`
	LogLevel  string     `mapstructure:"log_level"`
	LogFormat string     `mapstructure:"log_format"`
	Color     bool       `mapstructure:"color"`
	MaxSteps  int        `mapstructure:"max_steps"`
	Strict    bool       `mapstructure:"strict_completion"`
	HTTP      HTTPConfig `mapstructure:"http"`
	MCP       MCPConfig  `mapstructure:"mcp"`
}

// HTTPConfig configures `twoway serve`.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// MCPConfig configures `twoway mcp`.
type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Program:   programs.DefaultName,
		LogLevel:  "info",
		LogFormat: "text",
		Color:     true,
		MaxSteps:  runner.DefaultMaxSteps,
		HTTP:      HTTPConfig{Addr: ":8080"},
		MCP:       MCPConfig{Transport: "stdio", Port: 8081},
	}
}

// Load reads path on top of Default.
// A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies a generic map (from YAML, JSON or tool arguments) onto out.
// Scalars are weakly typed, so "50" fills an int field; unknown keys are errors.
func Decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
