// Package analysis sends interview transcripts to a text-generation model
// and normalizes the structured feedback it returns.
package analysis

import (
	"context"

	"github.com/skillsenselab/interview-coach/provider"
)

// Feedback field keys in the raw model response.
const (
	FieldStrengths       = "strengths"
	FieldWeaknesses      = "weaknesses"
	FieldRecommendations = "recommendations"
)

// RawFields is the unconstrained shape returned by the model: each value may
// be a string, a list, or absent.
type RawFields map[string]any

// Feedback is the canonical three-field analysis record. All fields are
// always present, defaulting to the empty string.
type Feedback struct {
	Strengths       string `json:"strengths"`
	Weaknesses      string `json:"weaknesses"`
	Recommendations string `json:"recommendations"`
}

// Analyzer is the interface that text-analysis backends must implement.
type Analyzer interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Analyze sends the transcript (and optional resume text) for analysis
	// and returns the raw, un-normalized feedback fields.
	Analyze(ctx context.Context, transcript, resumeText string) (RawFields, error)
}
