package gemini

import (
	"context"
	"fmt"
	"strings"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ asciiwiki.Provider = (*Client)(nil)

// Client implements [asciiwiki.Provider] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
// An empty key fails with [asciiwiki.ErrMissingAPIKey] before any network
// call is made.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", asciiwiki.ErrMissingAPIKey)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Generate sends a blocking request to the Gemini API and returns the full
// response text.
func (c *Client) Generate(ctx context.Context, req asciiwiki.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.resolveModel(req), promptContents(req.Prompt), BuildConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}

// Stream sends a streaming request to the Gemini API and returns an
// [asciiwiki.Stream] that emits text fragments.
func (c *Client) Stream(ctx context.Context, req asciiwiki.Request) (asciiwiki.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	iter := c.client.Models.GenerateContentStream(ctx, c.resolveModel(req), promptContents(req.Prompt), BuildConfig(req))
	return newStream(iter), nil
}

func (c *Client) resolveModel(req asciiwiki.Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.model
}

func promptContents(prompt string) []*genai.Content {
	return []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
}

// BuildConfig maps an asciiwiki Request to a Gemini generation config.
// Exported for testing.
func BuildConfig(req asciiwiki.Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	// Low-latency by default: a zero thinking budget disables extended
	// reasoning. HighQuality leaves the model's own budget in place.
	if !req.HighQuality {
		budget := int32(0)
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}

	if req.JSONResponse {
		config.ResponseMIMEType = "application/json"
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	return config
}

// responseText concatenates the text parts of the first candidate, skipping
// thought parts.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
