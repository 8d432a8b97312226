package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	apperrors "github.com/skillsenselab/interview-coach/errors"
	"github.com/skillsenselab/interview-coach/logger"
)

// GroqAnalyzer implements Analyzer against an OpenAI-compatible chat
// completion endpoint, constrained to a single JSON object response.
type GroqAnalyzer struct {
	cfg    Config
	client *openai.Client
	log    *logger.Logger
}

// NewGroqAnalyzer creates an analyzer backed by the configured endpoint.
func NewGroqAnalyzer(cfg Config) *GroqAnalyzer {
	cfg.ApplyDefaults()

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &GroqAnalyzer{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
		log:    logger.WithComponent("analysis"),
	}
}

// Name returns the analyzer name.
func (a *GroqAnalyzer) Name() string { return "groq" }

// IsAvailable reports whether the analyzer is configured with credentials.
func (a *GroqAnalyzer) IsAvailable(_ context.Context) bool {
	return a.cfg.APIKey != ""
}

// Analyze sends the transcript to the model with the coaching instruction
// and parses the JSON object it returns. Transport and parse failures are
// terminal for the request; there is no automatic retry.
func (a *GroqAnalyzer) Analyze(ctx context.Context, transcript, resumeText string) (RawFields, error) {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Temperature: a.cfg.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: BuildSystemPrompt(resumeText)},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		a.log.Error("Chat completion failed", logger.ErrorFields("analyze", err))
		return nil, apperrors.AnalysisFailed(err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.AnalysisFailed(fmt.Errorf("model returned no choices"))
	}

	content := resp.Choices[0].Message.Content
	var raw RawFields
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		a.log.Error("Model response is not valid JSON", logger.Fields("content", content))
		return nil, apperrors.AnalysisFailed(fmt.Errorf("parse model response: %w", err))
	}
	return raw, nil
}
