package asciiwiki

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ArtRequest describes one art lookup. Immutable once constructed.
type ArtRequest struct {
	Topic    string
	Language string

	// StyleDirectives is a free-form prompt fragment controlling the
	// visual character of the art. Empty = default style directives.
	StyleDirectives string
}

// Validate checks that the request carries a topic and a language.
func (r ArtRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("topic must be non-empty: %w", ErrValidation)
	}
	if strings.TrimSpace(r.Language) == "" {
		return fmt.Errorf("language must be non-empty: %w", ErrValidation)
	}
	return nil
}

// ArtResult is a validated generation result. Art is never empty after
// trimming. Text is optional auxiliary prose and may be empty.
type ArtResult struct {
	Art  string
	Text string
}

// artResponse is the JSON document the model is asked to produce.
type artResponse struct {
	Art  string `json:"art"`
	Text string `json:"text"`
}

// ParseArtResponse validates raw model output and extracts an ArtResult.
// The text is trimmed, an optional markdown code fence (plain or labeled
// "json") is stripped, and the remainder must be a JSON object whose "art"
// field is a string that is non-empty after trimming. Failures wrap
// [ErrValidation].
func ParseArtResponse(raw string) (ArtResult, error) {
	text := stripFence(strings.TrimSpace(raw))
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return ArtResult{}, fmt.Errorf("response is not a JSON object: %w", ErrValidation)
	}
	var resp artResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return ArtResult{}, fmt.Errorf("parse response JSON: %v: %w", err, ErrValidation)
	}
	if strings.TrimSpace(resp.Art) == "" {
		return ArtResult{}, fmt.Errorf("response is missing a non-empty art field: %w", ErrValidation)
	}
	return ArtResult{Art: resp.Art, Text: resp.Text}, nil
}

// stripFence removes a surrounding markdown code fence, optionally labeled
// "json". The model is instructed not to fence its output, but fencing is
// tolerated because upstream does it anyway now and then.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	inner := strings.TrimPrefix(s, "```")
	inner = strings.TrimPrefix(inner, "json")
	inner = strings.TrimSuffix(strings.TrimSpace(inner), "```")
	return strings.TrimSpace(inner)
}
