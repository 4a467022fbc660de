package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written into every ledger directory.
const FileName = "finmentor.yaml"

// Config represents the top-level finmentor.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Currency CurrencyConfig `yaml:"currency"`
	Advisor  AdvisorConfig  `yaml:"advisor"`
	Server   ServerConfig   `yaml:"server"`
	Git      GitConfig      `yaml:"git"`
}

// ProfileConfig identifies the ledger owner.
type ProfileConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// CurrencyConfig controls how amounts are displayed.
type CurrencyConfig struct {
	Code string `yaml:"code"` // ISO 4217, e.g. "INR"
}

// AdvisorConfig controls the AI chat assistant.
type AdvisorConfig struct {
	Model string `yaml:"model"`
}

// ServerConfig controls the dashboard API server.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a finmentor.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new ledger.
func Default(ownerName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: ownerName,
		},
		Currency: CurrencyConfig{
			Code: "INR",
		},
		Advisor: AdvisorConfig{
			Model: "gemini-2.5-flash",
		},
		Server: ServerConfig{
			Port:     8787,
			LogLevel: "info",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Finance Mentor",
			AuthorEmail: "mentor@finmentor.dev",
		},
	}
}
