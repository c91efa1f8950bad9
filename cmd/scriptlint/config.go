package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fractalqb/scriptlint"
)

// DefaultConfigFile is read from the working directory when no config file is
// given on the command line.
const DefaultConfigFile = ".scriptlint.yaml"

// Config holds the settings of a check run.
type Config struct {
	Encoding string   `yaml:"encoding"`
	MaxChars int      `yaml:"max_chars"`
	Limit    int      `yaml:"limit"`
	Enable   []string `yaml:"enable"`
	Disable  []string `yaml:"disable"`
	Fail     bool     `yaml:"fail"`
}

func DefaultConfig() Config {
	return Config{
		Encoding: "shift-jis",
		MaxChars: scriptlint.DefaultMaxLineChars,
	}
}

// LoadConfig reads a YAML config file. Settings missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.MaxChars < 0 {
		return cfg, fmt.Errorf("config %s: negative max_chars %d", path, cfg.MaxChars)
	}
	return cfg, nil
}

// Linter creates a linter with the rules and limits from cfg.
func (cfg Config) Linter() (*scriptlint.Linter, error) {
	enc, err := scriptlint.LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	rules, err := scriptlint.SelectRules(cfg.Enable, cfg.Disable)
	if err != nil {
		return nil, err
	}
	return &scriptlint.Linter{
		Rules:        rules,
		MaxLineChars: cfg.MaxChars,
		IssueLimit:   cfg.Limit,
		Encoding:     enc,
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
