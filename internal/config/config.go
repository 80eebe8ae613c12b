package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete pokerhand configuration
type Config struct {
	Log     *LogSettings     `hcl:"log,block"`
	Display *DisplaySettings `hcl:"display,block"`
	Deal    *DealSettings    `hcl:"deal,block"`
	Runner  *RunnerSettings  `hcl:"runner,block"`
}

// LogSettings controls the logger the CLI builds
type LogSettings struct {
	Level     string `hcl:"level,optional"`
	Formatter string `hcl:"formatter,optional"`
}

// DisplaySettings controls how cards and results are rendered
type DisplaySettings struct {
	Color string `hcl:"color,optional"`
	ASCII bool   `hcl:"ascii,optional"`
}

// DealSettings controls the deal command
type DealSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// RunnerSettings controls scenario evaluation
type RunnerSettings struct {
	Workers int `hcl:"workers,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: &LogSettings{
			Level:     "info",
			Formatter: "text",
		},
		Display: &DisplaySettings{
			Color: "auto",
			ASCII: false,
		},
		Deal: &DealSettings{
			Seed: 0,
		},
		Runner: &RunnerSettings{
			Workers: 4,
		},
	}
}

// Load loads configuration from an HCL file. An empty name or a missing
// file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills blocks and values left out of the file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Formatter == "" {
		c.Log.Formatter = defaults.Log.Formatter
	}

	if c.Display == nil {
		c.Display = defaults.Display
	}
	if c.Display.Color == "" {
		c.Display.Color = defaults.Display.Color
	}

	if c.Deal == nil {
		c.Deal = defaults.Deal
	}

	if c.Runner == nil {
		c.Runner = defaults.Runner
	}
	if c.Runner.Workers == 0 {
		c.Runner.Workers = defaults.Runner.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormatters := map[string]bool{
		"text":   true,
		"json":   true,
		"logfmt": true,
	}
	if !validFormatters[c.Log.Formatter] {
		return fmt.Errorf("invalid log formatter: %s", c.Log.Formatter)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Display.Color] {
		return fmt.Errorf("invalid color mode: %s", c.Display.Color)
	}

	if c.Runner.Workers < 1 {
		return fmt.Errorf("runner workers must be positive")
	}

	return nil
}
