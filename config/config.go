// Package config handles service configuration: a YAML base file with
// environment-variable overrides, loaded through viper and godotenv.
package config

import (
	"fmt"

	"github.com/skillsenselab/interview-coach/analysis"
	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/server"
	"github.com/skillsenselab/interview-coach/transcription/assemblyai"
	"github.com/skillsenselab/interview-coach/transcription/whisper"
)

// Config is the root configuration for the interview-coach service.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Server      server.Config `yaml:"server" mapstructure:"server"`

	Transcription TranscriptionConfig `yaml:"transcription" mapstructure:"transcription"`
	Analysis      analysis.Config     `yaml:"analysis" mapstructure:"analysis"`
}

// TranscriptionConfig selects and configures the active transcription variant.
type TranscriptionConfig struct {
	// Provider selects the transcription backend: "whisper" or "assemblyai".
	Provider   string            `yaml:"provider" mapstructure:"provider"`
	Whisper    whisper.Config    `yaml:"whisper" mapstructure:"whisper"`
	AssemblyAI assemblyai.Config `yaml:"assemblyai" mapstructure:"assemblyai"`
}

// ApplyDefaults applies default values to all configuration sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "interview-coach"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()

	if c.Transcription.Provider == "" {
		c.Transcription.Provider = whisper.ProviderName
	}
	c.Transcription.Whisper.ApplyDefaults()
	c.Transcription.AssemblyAI.ApplyDefaults()
	c.Analysis.ApplyDefaults()
}

// Validate validates all configuration sections.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}

	switch c.Transcription.Provider {
	case whisper.ProviderName:
	case assemblyai.ProviderName:
		if err := c.Transcription.AssemblyAI.Validate(); err != nil {
			return fmt.Errorf("config.transcription.assemblyai: %w", err)
		}
	default:
		return fmt.Errorf("config.transcription.provider must be %q or %q (got: %s)",
			whisper.ProviderName, assemblyai.ProviderName, c.Transcription.Provider)
	}

	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("config.analysis: %w", err)
	}
	return nil
}
