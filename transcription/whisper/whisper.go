// Package whisper implements transcription.Provider using an on-box
// Whisper CLI installation.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/provider"
	"github.com/skillsenselab/interview-coach/transcription"
)

const (
	// ProviderName is the registered name for the Whisper provider.
	ProviderName = "whisper"

	defaultWhisperBinary  = "whisper"
	defaultWhisperModel   = "base"
	defaultWhisperTimeout = 10 * time.Minute
)

// Config holds configuration for the Whisper transcription provider.
type Config struct {
	Binary   string        `json:"binary" yaml:"binary" mapstructure:"binary"`
	Model    string        `json:"model" yaml:"model" mapstructure:"model"`
	Language string        `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	TempDir  string        `json:"temp_dir,omitempty" yaml:"temp_dir" mapstructure:"temp_dir"`
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	if c.Binary == "" {
		c.Binary = defaultWhisperBinary
	}
	if c.Model == "" {
		c.Model = defaultWhisperModel
	}
	if c.Timeout == 0 {
		c.Timeout = defaultWhisperTimeout
	}
}

// Provider implements transcription.Provider by staging audio to a temp file
// and running the Whisper CLI against it.
//
// Inference is serialized with a mutex: the loaded model is not safe for
// concurrent use, so concurrent requests queue here instead of racing.
type Provider struct {
	cfg Config
	log *logger.Logger
	mu  sync.Mutex
}

// NewProvider creates a new Whisper transcription provider.
func NewProvider(cfg Config) *Provider {
	cfg.ApplyDefaults()
	return &Provider{
		cfg: cfg,
		log: logger.WithComponent("whisper"),
	}
}

// Factory returns a provider.Factory that creates Whisper Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			wc.Binary = v
		}
		if v, ok := cfg["model"].(string); ok {
			wc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			wc.Language = v
		}
		if v, ok := cfg["timeout"].(time.Duration); ok {
			wc.Timeout = v
		}
		if v, ok := cfg["temp_dir"].(string); ok {
			wc.TempDir = v
		}
		return NewProvider(wc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the Whisper binary is on PATH.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Transcribe stages the audio to a scoped temporary file, runs the Whisper
// CLI on it, and returns the transcription. The temp file and output
// directory are removed on every exit path.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	audioPath, cleanup, err := p.stageAudio(req.Audio)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	outDir, err := os.MkdirTemp(p.cfg.TempDir, "whisper-out-")
	if err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}

	args := []string{
		audioPath,
		"--model", model,
		"--output_format", "txt",
		"--output_dir", outDir,
	}
	if lang != "" {
		args = append(args, "--language", lang)
	}

	runCtx := ctx
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, p.cfg.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	p.mu.Lock()
	err = cmd.Run()
	p.mu.Unlock()
	if err != nil {
		if runCtx.Err() != nil {
			return nil, fmt.Errorf("whisper run: %w", runCtx.Err())
		}
		return nil, fmt.Errorf("whisper run: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	text, err := readTranscript(outDir, audioPath)
	if err != nil {
		return nil, err
	}

	p.log.Debug("Transcription complete", logger.DurationFields("transcribe", time.Since(start)))

	return &transcription.TranscriptionResponse{
		Text:     text,
		Language: lang,
	}, nil
}

// stageAudio writes audio bytes to a uniquely named temp file with a .wav
// suffix and returns its path with a cleanup func.
func (p *Provider) stageAudio(audio []byte) (string, func(), error) {
	tmp, err := os.CreateTemp(p.cfg.TempDir, "interview-audio-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("create temp audio file: %w", err)
	}
	path := tmp.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp audio file: %w", err)
	}
	return path, cleanup, nil
}

// readTranscript reads the .txt file the Whisper CLI writes next to the
// audio basename in the output directory.
func readTranscript(outDir, audioPath string) (string, error) {
	base := filepath.Base(audioPath)
	txtName := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	data, err := os.ReadFile(filepath.Join(outDir, txtName))
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return string(data), nil
}
