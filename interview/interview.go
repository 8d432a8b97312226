// Package interview coordinates the analysis pipeline: resume extraction,
// transcription, transcript validation, LLM analysis, and normalization.
package interview

import (
	"context"
	"strings"
	"time"

	"github.com/skillsenselab/interview-coach/analysis"
	apperrors "github.com/skillsenselab/interview-coach/errors"
	"github.com/skillsenselab/interview-coach/extract"
	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/transcription"
)

// Options tunes pipeline behavior per transcription variant.
type Options struct {
	// MaxAudioBytes rejects audio larger than this before any provider call.
	// Zero means no ceiling; the remote variant sets it (default 25 MiB).
	MaxAudioBytes int64
}

// ProcessInput is the raw material of one orchestration.
type ProcessInput struct {
	Audio           []byte
	AudioMediaType  string
	Resume          []byte
	ResumeMediaType string
}

// Result is the complete external contract returned to a caller.
type Result struct {
	Transcript string `json:"transcript"`
	analysis.Feedback
}

// Service drives one full analysis per call. Providers are injected at
// construction and shared read-only across requests.
type Service struct {
	transcriber transcription.Provider
	analyzer    analysis.Analyzer
	extractFn   func(data []byte, mediaType string) (string, error)
	opts        Options
	log         *logger.Logger
}

// NewService creates the orchestrator with its providers.
func NewService(transcriber transcription.Provider, analyzer analysis.Analyzer, opts Options) *Service {
	return &Service{
		transcriber: transcriber,
		analyzer:    analyzer,
		extractFn:   extract.Extract,
		opts:        opts,
		log:         logger.WithComponent("interview"),
	}
}

// Process validates input, extracts resume text if supplied, transcribes the
// audio, and returns the normalized analysis. All failures abort the whole
// request; no partial results are returned.
func (s *Service) Process(ctx context.Context, in ProcessInput) (*Result, error) {
	if err := validateAudioType(in.AudioMediaType); err != nil {
		return nil, err
	}

	var resumeText string
	if len(in.Resume) > 0 {
		if !extract.Supported(in.ResumeMediaType) {
			return nil, apperrors.UnsupportedResumeType(in.ResumeMediaType)
		}
		text, err := s.extractFn(in.Resume, in.ResumeMediaType)
		if err != nil {
			return nil, err
		}
		resumeText = text
		s.log.Debug("Resume extracted", logger.Fields("chars", len(resumeText)))
	}

	transcript, err := s.transcribe(ctx, in.Audio, in.AudioMediaType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.EmptyTranscript()
	}

	feedback, err := s.analyze(ctx, transcript, resumeText)
	if err != nil {
		return nil, err
	}

	return &Result{Transcript: transcript, Feedback: feedback}, nil
}

// Transcribe runs the transcription-only path.
func (s *Service) Transcribe(ctx context.Context, audio []byte, mediaType string) (string, error) {
	if err := validateAudioType(mediaType); err != nil {
		return "", err
	}
	return s.transcribe(ctx, audio, mediaType)
}

// AnalyzeText runs the analysis-only path on an existing transcript.
func (s *Service) AnalyzeText(ctx context.Context, transcript string) (*analysis.Feedback, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.InvalidInput("transcript must not be empty")
	}
	feedback, err := s.analyze(ctx, transcript, "")
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *Service) transcribe(ctx context.Context, audio []byte, mediaType string) (string, error) {
	if s.opts.MaxAudioBytes > 0 && int64(len(audio)) > s.opts.MaxAudioBytes {
		return "", apperrors.AudioTooLarge(int64(len(audio)), s.opts.MaxAudioBytes)
	}

	start := time.Now()
	resp, err := s.transcriber.Transcribe(ctx, transcription.TranscriptionRequest{
		Audio:     audio,
		MediaType: mediaType,
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return "", err
		}
		return "", apperrors.TranscriptionError(err.Error())
	}

	s.log.Info("Audio transcribed", logger.Fields(
		"provider", s.transcriber.Name(),
		"bytes", len(audio),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return resp.Text, nil
}

func (s *Service) analyze(ctx context.Context, transcript, resumeText string) (analysis.Feedback, error) {
	raw, err := s.analyzer.Analyze(ctx, transcript, resumeText)
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return analysis.Feedback{}, err
		}
		return analysis.Feedback{}, apperrors.AnalysisFailed(err)
	}
	return analysis.Normalize(raw), nil
}

func validateAudioType(mediaType string) error {
	if !strings.HasPrefix(mediaType, "audio/") {
		return apperrors.InvalidAudioType(mediaType)
	}
	return nil
}
