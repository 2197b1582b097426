package services

import "context"

// Provider names a language-model backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderLlama     Provider = "llama"
)

// Message is one chat turn sent to a model.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// CompletionRequest describes a single completion call.
type CompletionRequest struct {
	Model       string    `json:"model,omitempty" yaml:"model"`
	Messages    []Message `json:"messages" yaml:"messages"`
	Temperature float64   `json:"temperature,omitempty" yaml:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty" yaml:"max_tokens"`
	MaxRetries  int       `json:"max_retries,omitempty" yaml:"max_retries"`
}

// LLMFactory constructs completion clients for a provider and runs
// completions whose structured output is decoded into out.
type LLMFactory interface {
	Provider() Provider
	CreateCompletion(ctx context.Context, req CompletionRequest, out any) error
}
