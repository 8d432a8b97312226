package main

import (
	"testing"
	"time"

	"github.com/skillsenselab/interview-coach/config"
	"github.com/skillsenselab/interview-coach/transcription/assemblyai"
	"github.com/skillsenselab/interview-coach/transcription/whisper"
)

func TestNewTranscriber(t *testing.T) {
	t.Run("whisper", func(t *testing.T) {
		p, err := newTranscriber(config.TranscriptionConfig{
			Provider: whisper.ProviderName,
			Whisper:  whisper.Config{Binary: "whisper", Model: "small", Timeout: time.Minute},
		})
		if err != nil {
			t.Fatalf("newTranscriber() error: %v", err)
		}
		if p.Name() != whisper.ProviderName {
			t.Errorf("Name() = %q, want %q", p.Name(), whisper.ProviderName)
		}
	})

	t.Run("assemblyai", func(t *testing.T) {
		p, err := newTranscriber(config.TranscriptionConfig{
			Provider:   assemblyai.ProviderName,
			AssemblyAI: assemblyai.Config{APIKey: "k", ChunkSize: "5MB"},
		})
		if err != nil {
			t.Fatalf("newTranscriber() error: %v", err)
		}
		if p.Name() != assemblyai.ProviderName {
			t.Errorf("Name() = %q, want %q", p.Name(), assemblyai.ProviderName)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := newTranscriber(config.TranscriptionConfig{Provider: "deepgram"}); err == nil {
			t.Error("newTranscriber() with unknown provider should fail")
		}
	})
}
