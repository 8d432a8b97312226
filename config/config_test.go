package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skillsenselab/interview-coach/transcription/assemblyai"
	"github.com/skillsenselab/interview-coach/transcription/whisper"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", `
name: interview-coach
environment: production
server:
  port: 9000
transcription:
  provider: assemblyai
  assemblyai:
    poll_interval: 1s
    poll_timeout: 60s
analysis:
  model: llama-3.1-8b-instant
  temperature: 0.7
`)

	var cfg Config
	if err := Load("interview-coach", &cfg, WithConfigFile(configFile), WithEnvFile(filepath.Join(dir, "nonexistent.env"))); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("environment = %q, want production", cfg.Environment)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("server port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Transcription.Provider != assemblyai.ProviderName {
		t.Errorf("provider = %q, want assemblyai", cfg.Transcription.Provider)
	}
	if cfg.Transcription.AssemblyAI.PollInterval != time.Second {
		t.Errorf("poll interval = %s, want 1s", cfg.Transcription.AssemblyAI.PollInterval)
	}
	if cfg.Analysis.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", cfg.Analysis.Temperature)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "aai-secret")
	t.Setenv("GROQ_API_KEY", "groq-secret")
	t.Setenv("SERVER_PORT", "8080")

	dir := t.TempDir()
	var cfg Config
	err := Load("interview-coach", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Transcription.AssemblyAI.APIKey != "aai-secret" {
		t.Errorf("assemblyai api key = %q", cfg.Transcription.AssemblyAI.APIKey)
	}
	if cfg.Analysis.APIKey != "groq-secret" {
		t.Errorf("analysis api key = %q", cfg.Analysis.APIKey)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "GROQ_API_KEY=from-dotenv\n")

	if os.Getenv("GROQ_API_KEY") != "" {
		t.Skip("GROQ_API_KEY already set in environment")
	}
	t.Cleanup(func() { os.Unsetenv("GROQ_API_KEY") })

	var cfg Config
	err := Load("interview-coach", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Analysis.APIKey != "from-dotenv" {
		t.Errorf("analysis api key = %q, want from-dotenv", cfg.Analysis.APIKey)
	}
}

// LoadAndValidate is what the service binary boots with, so it must yield a
// runnable config even when no config file exists at all.
func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	noFile := WithConfigFile(filepath.Join(dir, "missing.yml"))
	noEnv := WithEnvFile(filepath.Join(dir, "missing.env"))

	t.Run("defaults applied without config file", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk-test")

		var cfg Config
		if err := LoadAndValidate("interview-coach", &cfg, noFile, noEnv); err != nil {
			t.Fatalf("LoadAndValidate() error: %v", err)
		}
		if cfg.Transcription.Provider != whisper.ProviderName {
			t.Errorf("provider = %q, want %q", cfg.Transcription.Provider, whisper.ProviderName)
		}
		if cfg.Name != "interview-coach" {
			t.Errorf("name = %q, want interview-coach", cfg.Name)
		}
		if cfg.Server.Port != 8000 {
			t.Errorf("server port = %d, want 8000", cfg.Server.Port)
		}
		if cfg.Transcription.AssemblyAI.PollInterval != 3*time.Second {
			t.Errorf("poll interval = %s, want 3s", cfg.Transcription.AssemblyAI.PollInterval)
		}
	})

	t.Run("invalid config rejected at startup", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "gsk-test")
		t.Setenv("ASSEMBLYAI_API_KEY", "")
		configFile := writeFile(t, dir, "bad.yml", `
transcription:
  provider: assemblyai
`)
		var cfg Config
		if err := LoadAndValidate("interview-coach", &cfg, WithConfigFile(configFile), noEnv); err == nil {
			t.Error("LoadAndValidate() should reject assemblyai without api key")
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "interview-coach" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Transcription.Provider != whisper.ProviderName {
		t.Errorf("default provider = %q, want whisper", cfg.Transcription.Provider)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Server.Port)
	}
	if !cfg.Debug {
		t.Error("development environment should enable debug")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var cfg Config
		cfg.ApplyDefaults()
		cfg.Analysis.APIKey = "k"
		return cfg
	}

	t.Run("valid whisper config", func(t *testing.T) {
		cfg := base()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error: %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.Transcription.Provider = "deepgram"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unknown provider")
		}
	})

	t.Run("assemblyai requires api key", func(t *testing.T) {
		cfg := base()
		cfg.Transcription.Provider = assemblyai.ProviderName
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should require assemblyai api key")
		}
		cfg.Transcription.AssemblyAI.APIKey = "k"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error: %v", err)
		}
	})

	t.Run("whisper does not require assemblyai key", func(t *testing.T) {
		cfg := base()
		cfg.Transcription.AssemblyAI.APIKey = ""
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error: %v", err)
		}
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := base()
		cfg.Environment = "qa"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject unknown environment")
		}
	})
}
