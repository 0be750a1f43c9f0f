package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bankfeed-dev/bankfeed/internal/enrich"
)

// FileName is the config file written at the workspace root.
const FileName = "bankfeed.yaml"

// Config represents the top-level bankfeed.yaml configuration.
type Config struct {
	Statements StatementsConfig `yaml:"statements"`
	Output     OutputConfig     `yaml:"output"`
	Rules      []RuleConfig     `yaml:"rules,omitempty"`
	Merchants  []MerchantConfig `yaml:"merchants,omitempty"`
}

// StatementsConfig locates the statement drop directories.
type StatementsConfig struct {
	Dir          string `yaml:"dir"`
	ProcessedDir string `yaml:"processed_dir"`
}

// OutputConfig controls where imported records accumulate.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// RuleConfig is a user category rule, evaluated ahead of the built-ins.
type RuleConfig struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// MerchantConfig is a user brand correction, evaluated ahead of the built-ins.
type MerchantConfig struct {
	Match string `yaml:"match"`
	Name  string `yaml:"name"`
}

// Load reads a bankfeed.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Statements: StatementsConfig{
			Dir:          "statements",
			ProcessedDir: "statements/processed",
		},
		Output: OutputConfig{
			Path: "transactions.csv",
		},
	}
}

// EngineOptions converts user rules and merchant corrections into enrichment
// engine options. The engine prepends them to its built-in tables.
func (c *Config) EngineOptions() enrich.Options {
	var opts enrich.Options
	for _, r := range c.Rules {
		keywords := make([]string, len(r.Keywords))
		for i, kw := range r.Keywords {
			keywords[i] = strings.ToLower(kw)
		}
		opts.Rules = append(opts.Rules, enrich.Rule{Category: r.Category, Keywords: keywords})
	}
	for _, m := range c.Merchants {
		opts.Brands = append(opts.Brands, enrich.BrandFix{Fragment: strings.ToLower(m.Match), Name: m.Name})
	}
	return opts
}
