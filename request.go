package asciiwiki

import "fmt"

// Request carries a prompt and generation parameters to a [Provider].
// The provider uses its own defaults when fields are zero/nil.
type Request struct {
	Prompt       string
	SystemPrompt string
	Model        string   // model ID, provider-specific; empty = provider default
	MaxTokens    int      // 0 = provider default
	Temperature  *float64 // nil = provider default

	// JSONResponse hints the provider that the response should be a raw
	// JSON document. Providers without a response-format knob ignore it;
	// the prompt must carry the instruction regardless.
	JSONResponse bool

	// HighQuality allows slower, higher-quality generation. When false,
	// providers disable extended reasoning for low-latency responses.
	HighQuality bool
}

// Validate checks universal constraints on Request.
// Provider implementations may apply additional provider-specific validation.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt must be non-empty: %w", ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 2 {
			return fmt.Errorf("temperature must be in [0, 2], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	return nil
}
