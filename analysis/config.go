package analysis

import (
	"fmt"
	"time"
)

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "llama-3.1-8b-instant"
	defaultTemperature = 0.7
	defaultTimeout     = 60 * time.Second
)

// Config holds configuration for the analysis provider. The endpoint is
// OpenAI-compatible; Groq is the default.
type Config struct {
	APIKey      string        `json:"-" yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model       string        `json:"model" yaml:"model" mapstructure:"model"`
	Temperature float32       `json:"temperature" yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = defaultTemperature
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2 (got: %g)", c.Temperature)
	}
	return nil
}
