// Package assemblyai implements transcription.Provider against the
// AssemblyAI REST API: chunked upload, job submission, and status polling
// bounded by wall-clock time.
package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/skillsenselab/interview-coach/errors"
	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/provider"
	"github.com/skillsenselab/interview-coach/transcription"
	"github.com/skillsenselab/interview-coach/util"
)

const (
	// ProviderName is the registered name for the AssemblyAI provider.
	ProviderName = "assemblyai"

	defaultBaseURL      = "https://api.assemblyai.com"
	defaultChunkSize    = "5MB"
	defaultPollInterval = 3 * time.Second
	defaultPollTimeout  = 300 * time.Second
	defaultMaxAudioSize = "25MB"
	defaultHTTPTimeout  = 30 * time.Second
)

// Job status values reported by the transcript endpoint.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Config holds configuration for the AssemblyAI transcription provider.
type Config struct {
	APIKey       string        `json:"-" yaml:"api_key" mapstructure:"api_key"`
	BaseURL      string        `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	ChunkSize    string        `json:"chunk_size" yaml:"chunk_size" mapstructure:"chunk_size"`
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval" mapstructure:"poll_interval"`
	PollTimeout  time.Duration `json:"poll_timeout" yaml:"poll_timeout" mapstructure:"poll_timeout"`
	MaxAudioSize string        `json:"max_audio_size" yaml:"max_audio_size" mapstructure:"max_audio_size"`
	HTTPTimeout  time.Duration `json:"http_timeout" yaml:"http_timeout" mapstructure:"http_timeout"`
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.ChunkSize == "" {
		c.ChunkSize = defaultChunkSize
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.PollTimeout == 0 {
		c.PollTimeout = defaultPollTimeout
	}
	if c.MaxAudioSize == "" {
		c.MaxAudioSize = defaultMaxAudioSize
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive (got: %s)", c.PollInterval)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll_timeout must be positive (got: %s)", c.PollTimeout)
	}
	return nil
}

// MaxAudioBytes returns the configured audio size ceiling in bytes.
func (c *Config) MaxAudioBytes() int64 {
	return util.ParseSize(c.MaxAudioSize, util.ParseSize(defaultMaxAudioSize, 0))
}

// Provider implements transcription.Provider using the AssemblyAI REST API.
type Provider struct {
	cfg       Config
	chunkSize int64
	client    *http.Client
	log       *logger.Logger
}

// NewProvider creates a new AssemblyAI transcription provider.
func NewProvider(cfg Config) *Provider {
	cfg.ApplyDefaults()
	return &Provider{
		cfg:       cfg,
		chunkSize: util.ParseSize(cfg.ChunkSize, util.ParseSize(defaultChunkSize, 0)),
		client:    &http.Client{Timeout: cfg.HTTPTimeout},
		log:       logger.WithComponent("assemblyai"),
	}
}

// Factory returns a provider.Factory that creates AssemblyAI Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		ac := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			ac.APIKey = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			ac.BaseURL = v
		}
		if v, ok := cfg["chunk_size"].(string); ok {
			ac.ChunkSize = v
		}
		if v, ok := cfg["poll_interval"].(time.Duration); ok {
			ac.PollInterval = v
		}
		if v, ok := cfg["poll_timeout"].(time.Duration); ok {
			ac.PollTimeout = v
		}
		if v, ok := cfg["max_audio_size"].(string); ok {
			ac.MaxAudioSize = v
		}
		return NewProvider(ac), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured with credentials.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe runs the full remote pipeline: upload, submit, poll.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	uploadURL, err := p.upload(ctx, req.Audio)
	if err != nil {
		return nil, err
	}

	jobID, err := p.submit(ctx, uploadURL)
	if err != nil {
		return nil, err
	}
	p.log.Debug("Transcription job submitted", logger.Fields("job_id", jobID))

	text, err := p.poll(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &transcription.TranscriptionResponse{Text: text}, nil
}

// upload sends audio in fixed-size chunks to the upload endpoint and
// returns the upload URL from the final chunk's response. Zero-length audio
// produces zero chunks and therefore no upload URL.
func (p *Provider) upload(ctx context.Context, audio []byte) (string, error) {
	var uploadURL string
	for offset := int64(0); offset < int64(len(audio)); offset += p.chunkSize {
		end := offset + p.chunkSize
		if end > int64(len(audio)) {
			end = int64(len(audio))
		}

		resp, err := p.do(ctx, http.MethodPost, "/v2/upload", bytes.NewReader(audio[offset:end]), "application/octet-stream")
		if err != nil {
			return "", apperrors.UploadFailed(err)
		}
		body, status, err := drain(resp)
		if err != nil {
			return "", apperrors.UploadFailed(err)
		}
		if status != http.StatusOK {
			p.log.Error("Upload chunk rejected", logger.Fields("status", status, "body", string(body)))
			return "", apperrors.UploadFailed(fmt.Errorf("upload returned status %d", status))
		}

		var ur uploadResponse
		if err := json.Unmarshal(body, &ur); err != nil {
			return "", apperrors.UploadFailed(fmt.Errorf("decode upload response: %w", err))
		}
		uploadURL = ur.UploadURL
	}

	if uploadURL == "" {
		return "", apperrors.UploadFailed(fmt.Errorf("no upload URL returned for %d audio bytes", len(audio)))
	}
	return uploadURL, nil
}

// submit creates a transcription job for the uploaded audio.
func (p *Provider) submit(ctx context.Context, uploadURL string) (string, error) {
	payload, err := json.Marshal(submitRequest{AudioURL: uploadURL})
	if err != nil {
		return "", apperrors.SubmitFailed(err)
	}

	resp, err := p.do(ctx, http.MethodPost, "/v2/transcript", bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", apperrors.SubmitFailed(err)
	}
	body, status, err := drain(resp)
	if err != nil {
		return "", apperrors.SubmitFailed(err)
	}
	if status != http.StatusOK && status != http.StatusAccepted {
		p.log.Error("Transcription submit rejected", logger.Fields("status", status, "body", string(body)))
		return "", apperrors.SubmitFailed(fmt.Errorf("submit returned status %d", status))
	}

	var tr transcriptResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", apperrors.SubmitFailed(fmt.Errorf("decode submit response: %w", err))
	}
	if tr.ID == "" {
		return "", apperrors.SubmitFailed(fmt.Errorf("submit response missing job id"))
	}
	return tr.ID, nil
}

// poll queries job status on a fixed interval until a terminal state or the
// wall-clock ceiling is reached. Retry count is unbounded; elapsed time is not.
func (p *Provider) poll(ctx context.Context, jobID string) (string, error) {
	deadline := time.Now().Add(p.cfg.PollTimeout)

	for time.Now().Before(deadline) {
		tr, err := p.status(ctx, jobID)
		if err != nil {
			return "", err
		}

		switch tr.Status {
		case StatusCompleted:
			return tr.Text, nil
		case StatusError:
			p.log.Error("Transcription job failed", logger.Fields("job_id", jobID, "error", tr.Error))
			return "", apperrors.TranscriptionError(tr.Error)
		}

		select {
		case <-ctx.Done():
			return "", apperrors.TranscriptionError(ctx.Err().Error())
		case <-time.After(p.cfg.PollInterval):
		}
	}

	return "", apperrors.TranscriptionTimeout()
}

// status fetches the current state of a transcription job.
func (p *Provider) status(ctx context.Context, jobID string) (*transcriptResponse, error) {
	resp, err := p.do(ctx, http.MethodGet, "/v2/transcript/"+jobID, nil, "")
	if err != nil {
		return nil, apperrors.TranscriptionError(err.Error())
	}
	body, status, err := drain(resp)
	if err != nil {
		return nil, apperrors.TranscriptionError(err.Error())
	}
	if status != http.StatusOK {
		return nil, apperrors.TranscriptionError(fmt.Sprintf("status check returned %d", status))
	}

	var tr transcriptResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, apperrors.TranscriptionError(fmt.Sprintf("decode status response: %v", err))
	}
	return &tr, nil
}

// do issues an authorized request against the AssemblyAI API.
func (p *Provider) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.cfg.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("authorization", p.cfg.APIKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return p.client.Do(req)
}

// drain reads and closes a response body.
func drain(resp *http.Response) ([]byte, int, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// --- internal AssemblyAI API types ---

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type submitRequest struct {
	AudioURL string `json:"audio_url"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}
