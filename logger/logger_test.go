package logger

import (
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want %q", cfg.Output, "stdout")
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("coach")
	tagged := base.WithComponent("transcription")
	if tagged == base {
		t.Error("WithComponent should return a new logger")
	}
	// Must not panic when logging through the derived logger.
	tagged.Debug("component logger works")
}

func TestFields(t *testing.T) {
	m := Fields("op", "transcribe", "bytes", 1024)
	if m["op"] != "transcribe" {
		t.Errorf("op = %v, want transcribe", m["op"])
	}
	if m["bytes"] != 1024 {
		t.Errorf("bytes = %v, want 1024", m["bytes"])
	}

	// Odd trailing value is ignored.
	m = Fields("only")
	if len(m) != 0 {
		t.Errorf("len = %d, want 0", len(m))
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("poll", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v, want 1500", m[FieldDuration])
	}
}
