package services

import (
	"context"

	"github.com/google/uuid"
)

// Record is a row returned by a similarity search.
type Record struct {
	ID       uuid.UUID      `json:"id" yaml:"id"`
	Content  string         `json:"content" yaml:"content"`
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata"`
	Distance float64        `json:"distance" yaml:"distance"`
}

// SynthesizedResponse is the structured answer produced by a Synthesizer.
type SynthesizedResponse struct {
	ThoughtProcess []string `json:"thought_process" yaml:"thought_process"`
	Answer         string   `json:"answer" yaml:"answer"`
	EnoughContext  bool     `json:"enough_context" yaml:"enough_context"`
}

// Synthesizer answers a question from retrieved context.
type Synthesizer interface {
	Generate(ctx context.Context, question string, records []Record) (*SynthesizedResponse, error)
}
