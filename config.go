package dynsql

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zoobzio/dynsql/internal/types"
	"gopkg.in/yaml.v3"
)

// Strategy styles understood by StrategyConfig.
const (
	StylePositional = "positional"
	StyleNamed      = "named"
	StyleNumbered   = "numbered"
)

// StrategyConfig selects a rendering strategy from configuration.
//
//	style: named
//	prefix: p
//	template: "#{%s}"
//	include_types: true
type StrategyConfig struct {
	Style        string `yaml:"style"`
	Prefix       string `yaml:"prefix,omitempty"`
	Template     string `yaml:"template,omitempty"`
	IncludeTypes bool   `yaml:"include_types,omitempty"`
}

// LoadStrategyConfig parses a YAML strategy configuration.
func LoadStrategyConfig(r io.Reader) (*StrategyConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read strategy config: %w", err)
	}
	var cfg StrategyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse strategy config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStrategyConfigFile reads and parses the YAML file at path.
func LoadStrategyConfigFile(path string) (*StrategyConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open strategy config: %w", err)
	}
	defer f.Close()
	return LoadStrategyConfig(f)
}

// Validate checks the style and template.
func (c *StrategyConfig) Validate() error {
	switch c.Style {
	case StylePositional, StyleNumbered:
	case StyleNamed:
		if c.Template != "" && strings.Count(c.Template, "%s") != 1 {
			return &ConfigurationError{Entity: "strategy config", Field: "template", Reason: `must contain exactly one "%s"`}
		}
	case "":
		return types.NewConfigurationError("strategy config", "a style")
	default:
		return &ConfigurationError{Entity: "strategy config", Field: "style", Reason: fmt.Sprintf("unknown style %q", c.Style)}
	}
	return nil
}

// Strategy returns the configured rendering strategy.
func (c *StrategyConfig) Strategy() (Strategy, error) {
	if err := c.Validate(); err != nil {
		return Strategy{}, err
	}
	switch c.Style {
	case StyleNamed:
		prefix, template := c.Prefix, c.Template
		if prefix == "" {
			prefix = "p"
		}
		if template == "" {
			template = "#{%s}"
		}
		return TryNamedStrategy(prefix, template, c.IncludeTypes)
	case StyleNumbered:
		prefix := c.Prefix
		if prefix == "" {
			prefix = "$"
		}
		return NumberedStrategy(prefix), nil
	}
	return Positional(), nil
}
