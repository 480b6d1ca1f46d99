// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-analyzer/internal/scoring"
)

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must
// be provided via CLI flags.
type Config struct {
	// Strategy selects the scoring backend: "keyword", "similarity", or "llm".
	Strategy string `json:"strategy,omitempty"`
	// MinTextLength is the minimum résumé length accepted for analysis.
	MinTextLength int `json:"min_text_length,omitempty"`
	// TextBudget caps the characters sent to the LLM backend.
	TextBudget int `json:"text_budget,omitempty"`
	// APIKey is the Gemini API key for the LLM backend.
	APIKey string `json:"api_key,omitempty"`
	// LLMTimeoutSeconds bounds one LLM backend call.
	LLMTimeoutSeconds int `json:"llm_timeout_seconds,omitempty"`
	// Port is the HTTP server listen port.
	Port int `json:"port,omitempty"`
	// Verbose prints detailed analysis breakdowns.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Strategy {
	case "", scoring.StrategyKeyword, scoring.StrategySimilarity, scoring.StrategyLLM:
	default:
		return fmt.Errorf("config error: unknown strategy %q", c.Strategy)
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("config error: 'min_text_length' must be non-negative")
	}
	if c.TextBudget < 0 {
		return fmt.Errorf("config error: 'text_budget' must be non-negative")
	}
	if c.LLMTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'llm_timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	if c.Strategy == scoring.StrategyLLM && c.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("config error: llm strategy requires an API key")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled
// from defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.MinTextLength == 0 {
		result.MinTextLength = defaults.MinTextLength
	}
	if result.TextBudget == 0 {
		result.TextBudget = defaults.TextBudget
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		Strategy:          scoring.StrategyKeyword,
		MinTextLength:     200,
		TextBudget:        6000,
		LLMTimeoutSeconds: 60,
		Port:              8080,
	}
}
