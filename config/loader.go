package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases maps legacy flat environment variables to config keys.
// The credential names match what deployments already export.
var envAliases = map[string]string{
	"ASSEMBLYAI_API_KEY": "transcription.assemblyai.api_key",
	"GROQ_API_KEY":       "analysis.api_key",
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadAndValidate loads configuration into cfg, applies defaults to every
// section, and validates the result. This is the entry point the service
// binary uses; a config that passes here is safe to run with.
func LoadAndValidate(serviceName string, cfg *Config, opts ...LoaderOption) error {
	if err := Load(serviceName, cfg, opts...); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load loads configuration into cfg. It reads an optional YAML base file,
// loads an optional .env file, then applies environment-variable overrides.
// No defaults are applied; callers that run the result use LoadAndValidate.
func Load(serviceName string, cfg *Config, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findConfigFile(serviceName)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findEnvFile()
	}

	v := viper.New()

	// 1. YAML base configuration.
	if lc.ConfigFile != "" && fileExists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("[config] warning: failed to load config file %s: %v\n", lc.ConfigFile, err)
		}
	}

	// 2. .env file, loaded into the process environment.
	if lc.EnvFile != "" && fileExists(lc.EnvFile) {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			fmt.Printf("[config] warning: failed to load .env file %s: %v\n", lc.EnvFile, err)
		}
	}

	// 3. Environment overrides.
	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for service %s: %w", serviceName, err)
	}
	return nil
}

// findConfigFile searches for config.yml in standard locations.
func findConfigFile(serviceName string) string {
	searchPaths := []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		fmt.Sprintf("../cmd/%s/config.yml", serviceName),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findEnvFile searches for a .env file in standard locations.
func findEnvFile() string {
	for _, path := range []string{"./.env", "../.env", "../../.env"} {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// bindEnvVars maps process environment variables onto viper keys. Flat names
// like SERVER_PORT become nested keys (server.port); the aliases cover
// credentials whose names predate the nested layout.
func bindEnvVars(v *viper.Viper) {
	for alias, key := range envAliases {
		if val := os.Getenv(alias); val != "" {
			v.Set(key, val)
		}
	}

	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants generates nested key candidates for an environment variable.
// Examples:
//
//	SERVER_PORT -> [server_port, server.port]
//	TRANSCRIPTION_ASSEMBLYAI_POLL_TIMEOUT -> [... transcription.assemblyai.poll_timeout ...]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	// Progressive nesting: treat a prefix as the section and keep the rest
	// joined, so TRANSCRIPTION_ASSEMBLYAI_API_KEY can reach
	// transcription.assemblyai.api_key.
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}
	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
