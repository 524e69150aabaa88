// Package config loads the client-utility settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultChannel = "Rust Analyzer Client"

// logEnvVar forces debug logging on when set to "debug", regardless of the
// config file.
const logEnvVar = "RA_LOG"

// Config holds the settings for the editor-client utilities.
type Config struct {
	Server struct {
		// Path is an explicit language-server binary; empty means search PATH.
		Path string `yaml:"path"`
	} `yaml:"server"`
	Trace struct {
		// Extension enables debug-level logging of the client itself.
		Extension bool `yaml:"extension"`
	} `yaml:"trace"`
	// Channel names the output channel shown to the user.
	Channel string `yaml:"channel"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	cfg := &Config{Channel: defaultChannel}
	applyEnv(cfg)
	return cfg
}

// Load reads a YAML config file and applies environment overrides.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{Channel: defaultChannel}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if os.Getenv(logEnvVar) == "debug" {
		cfg.Trace.Extension = true
	}
}
