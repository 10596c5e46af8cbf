// Package config handles configuration loading for ai-ledger.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the name of the config file inside the ledger directory.
const FileName = "config.json"

// Config represents the ledger configuration stored in .ai-ledger/config.json.
type Config struct {
	Version              string `mapstructure:"version" json:"version" yaml:"version"`
	DefaultRiskLevel     string `mapstructure:"defaultRiskLevel" json:"defaultRiskLevel" yaml:"defaultRiskLevel"`
	RequireHumanApproval bool   `mapstructure:"requireHumanApproval" json:"requireHumanApproval" yaml:"requireHumanApproval"`

	// Index is never written by init; it is only read from the file or env.
	Index IndexConfig `mapstructure:"index" json:"index" yaml:"index"`
}

// IndexConfig represents search index configuration.
type IndexConfig struct {
	Path string `mapstructure:"path" json:"path" yaml:"path"`
}

// Default returns the configuration written by init.
func Default() *Config {
	return &Config{
		Version:              "0.1",
		DefaultRiskLevel:     "low",
		RequireHumanApproval: true,
		Index:                IndexConfig{Path: "index.db"},
	}
}

// fileConfig is the subset of Config that init writes to config.json.
type fileConfig struct {
	Version              string `json:"version"`
	DefaultRiskLevel     string `json:"defaultRiskLevel"`
	RequireHumanApproval bool   `json:"requireHumanApproval"`
}

// Marshal renders c the way init writes it: two-space indented JSON with a
// trailing newline. The index settings are left out.
func (c *Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(fileConfig{
		Version:              c.Version,
		DefaultRiskLevel:     c.DefaultRiskLevel,
		RequireHumanApproval: c.RequireHumanApproval,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

// Load reads <base>/config.json when it exists, applies AI_LEDGER_*
// environment overrides and fills the rest with defaults. Relative index
// paths are resolved against base.
func Load(base string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	path := filepath.Join(base, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("AI_LEDGER")
	v.AutomaticEnv()

	v.BindEnv("defaultRiskLevel", "AI_LEDGER_DEFAULT_RISK_LEVEL")
	v.BindEnv("requireHumanApproval", "AI_LEDGER_REQUIRE_HUMAN_APPROVAL")
	v.BindEnv("index.path", "AI_LEDGER_INDEX_PATH")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Index.Path = os.ExpandEnv(cfg.Index.Path)
	if !filepath.IsAbs(cfg.Index.Path) {
		cfg.Index.Path = filepath.Join(base, cfg.Index.Path)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("defaultRiskLevel", d.DefaultRiskLevel)
	v.SetDefault("requireHumanApproval", d.RequireHumanApproval)
	v.SetDefault("index.path", d.Index.Path)
}
