package asciiwiki

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const defaultMaxAttempts = 3

// Client wraps a [Provider] with response-shape enforcement and bounded
// retries. The upstream service is a black box that occasionally returns
// malformed, fenced, or non-JSON text; GenerateArt retries those uniformly
// up to the attempt bound.
//
// Client holds no mutable state after construction and is safe for
// concurrent use. It imposes no internal timeouts; callers needing bounded
// latency cancel ctx around the whole call.
type Client struct {
	provider    Provider
	model       string
	maxAttempts int
	auxText     bool
	highQuality bool
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID passed to the provider. Default is the
// provider's default model.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithMaxAttempts sets the attempt bound for GenerateArt. Default is 3.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

// WithAuxiliaryText enables the optional text field in art results.
// When disabled (the default), results carry only art.
func WithAuxiliaryText(enabled bool) Option {
	return func(c *Client) { c.auxText = enabled }
}

// WithHighQuality allows slower, higher-quality generation. When disabled
// (the default), providers are asked for low-latency responses without
// extended reasoning.
func WithHighQuality(enabled bool) Option {
	return func(c *Client) { c.highQuality = enabled }
}

// New creates a Client backed by the given provider.
func New(provider Provider, opts ...Option) *Client {
	c := &Client{
		provider:    provider,
		maxAttempts: defaultMaxAttempts,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GenerateArt asks the provider for ASCII art depicting the request's topic
// and validates the response shape. Attempts are strictly sequential with no
// inter-attempt delay; the first success returns immediately. Transport
// errors and validation rejections retry uniformly. After the bound is
// exhausted the call fails with a [*RetryExhaustedError] wrapping the last
// attempt's error.
func (c *Client) GenerateArt(ctx context.Context, req ArtRequest) (ArtResult, error) {
	if err := req.Validate(); err != nil {
		return ArtResult{}, err
	}

	// Deterministic settings: art for the same topic and style should be
	// stable across reloads.
	temp := 0.0
	greq := Request{
		Prompt:       artPrompt(req),
		Model:        c.model,
		Temperature:  &temp,
		JSONResponse: true,
		HighQuality:  c.highQuality,
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		raw, err := c.provider.Generate(ctx, greq)
		if err != nil {
			lastErr = err
			continue
		}
		result, err := ParseArtResponse(raw)
		if err != nil {
			lastErr = err
			continue
		}
		if !c.auxText {
			result.Text = ""
		}
		return result, nil
	}
	return ArtResult{}, &RetryExhaustedError{Attempts: c.maxAttempts, Err: lastErr}
}

// StreamDefinition asks the provider for an encyclopedia-style definition of
// topic and returns it as a lazy fragment sequence. One request, no retry.
//
// If the upstream call fails mid-stream, the stream yields one final
// human-readable error fragment before Next() surfaces the error, so a
// partial definition degrades gracefully on screen. Consumers must treat the
// trailing fragment plus the error as a single terminal event.
func (c *Client) StreamDefinition(ctx context.Context, topic, language string) (Stream, error) {
	if err := (ArtRequest{Topic: topic, Language: language}).Validate(); err != nil {
		return nil, err
	}
	inner, err := c.provider.Stream(ctx, Request{
		Prompt:      definitionPrompt(topic, language),
		Model:       c.model,
		HighQuality: c.highQuality,
	})
	if err != nil {
		return nil, err
	}
	return &definitionStream{inner: inner}, nil
}

// RandomWord asks the provider for one random encyclopedia-worthy word in
// the given language. One request, one attempt, no retry, no partial output.
func (c *Client) RandomWord(ctx context.Context, language string) (string, error) {
	if strings.TrimSpace(language) == "" {
		return "", fmt.Errorf("language must be non-empty: %w", ErrValidation)
	}
	raw, err := c.provider.Generate(ctx, Request{
		Prompt: randomWordPrompt(language),
		Model:  c.model,
	})
	if err != nil {
		return "", fmt.Errorf("random word: %w", err)
	}
	word := firstWord(raw)
	if word == "" {
		return "", fmt.Errorf("random word: empty response: %w", ErrValidation)
	}
	return word, nil
}

// firstWord extracts the first whitespace-delimited token, stripped of
// quoting and trailing punctuation the model sometimes adds.
func firstWord(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], "\"'`.,!")
}

// definitionStream decorates a provider stream with graceful mid-stream
// failure: the first terminal error is preceded by one descriptive fragment.
type definitionStream struct {
	inner   Stream
	text    strings.Builder
	pending error // error to surface on the Next() after the error fragment
	err     error // surfaced terminal error
}

// Interface compliance check.
var _ Stream = (*definitionStream)(nil)

func (s *definitionStream) Next() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.pending != nil {
		s.err = s.pending
		s.pending = nil
		return "", s.err
	}

	frag, err := s.inner.Next()
	switch {
	case err == nil:
		s.text.WriteString(frag)
		return frag, nil
	case err == io.EOF:
		s.err = io.EOF
		return "", io.EOF
	default:
		s.pending = err
		notice := fmt.Sprintf("\n[definition unavailable: %v]", err)
		s.text.WriteString(notice)
		return notice, nil
	}
}

func (s *definitionStream) State() StreamState {
	return s.inner.State()
}

func (s *definitionStream) Text() (string, error) {
	if s.inner.State() == StreamStateNew {
		return "", ErrStreamNotReady
	}
	return s.text.String(), nil
}

func (s *definitionStream) Close() error {
	return s.inner.Close()
}
