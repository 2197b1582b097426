// Package services is the facade through which retrieval-augmented
// generation code reaches the language-model layer.
//
// It publishes LLMFactory, Synthesizer and SynthesizedResponse. Concrete
// implementations live with the code that owns the provider credentials.
package services
