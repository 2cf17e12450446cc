package linter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/speakeasy-api/jsxlint/system"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads lint configuration from a YAML reader.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Extends) == 0 {
		cfg.Extends = []string{RulesetAll}
	}
	if cfg.Categories == nil {
		cfg.Categories = make(map[string]CategoryConfig)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputFormatText
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFromFile loads lint configuration from a YAML file on the host.
func LoadConfigFromFile(path string) (*Config, error) {
	return LoadConfigFromFS(&system.FileSystem{}, path)
}

// LoadConfigFromFS loads lint configuration from a YAML file in fsys.
func LoadConfigFromFS(fsys system.VirtualFS, path string) (*Config, error) {
	data, err := system.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	return LoadConfig(bytes.NewReader(data))
}
