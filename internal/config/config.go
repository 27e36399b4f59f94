package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aldocassola/xorcrack"
)

// Config is the xorcrack configuration file.
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Server   Server   `yaml:"server"`
	Logging  Logging  `yaml:"logging"`
}

// Analysis bounds the key search.
type Analysis struct {
	MinKeyLength int `yaml:"min_key_length"`
	MaxKeyLength int `yaml:"max_key_length"`
	Candidates   int `yaml:"candidates"`
	Workers      int `yaml:"workers"`
}

// Server configures `xorcrack serve`.
type Server struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: Analysis{
			MinKeyLength: xorcrack.DefaultMinKeyLength,
			MaxKeyLength: xorcrack.DefaultMaxKeyLength,
			Candidates:   xorcrack.DefaultCandidates,
			Workers:      4,
		},
		Server: Server{
			Bind:         "127.0.0.1",
			Port:         8420,
			MaxBodyBytes: 1 << 20,
		},
	}
}

// LoadConfig reads configPath over the defaults and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config as YAML, creating its directory if needed.
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.MinKeyLength < 1 || a.MaxKeyLength < a.MinKeyLength {
		return errors.Errorf("analysis: bad key length range [%d, %d]", a.MinKeyLength, a.MaxKeyLength)
	}
	if a.Candidates < 1 {
		return errors.Errorf("analysis: candidates must be positive, got %d", a.Candidates)
	}
	if a.Workers < 1 {
		return errors.Errorf("analysis: workers must be positive, got %d", a.Workers)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.Errorf("server: port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 1 {
		return errors.Errorf("server: max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Options converts the analysis section for xorcrack.Break.
func (c *Config) Options() xorcrack.Options {
	return xorcrack.Options{
		MinKeyLength: c.Analysis.MinKeyLength,
		MaxKeyLength: c.Analysis.MaxKeyLength,
		Candidates:   c.Analysis.Candidates,
		Workers:      c.Analysis.Workers,
	}
}
