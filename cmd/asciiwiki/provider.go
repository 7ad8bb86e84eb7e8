package main

import (
	"context"
	"fmt"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"github.com/samirahmmed/ascii-wiki1000/anthropic"
	"github.com/samirahmmed/ascii-wiki1000/gemini"
)

// resolveProvider selects and constructs the provider. All env var values are
// passed in as parameters — env is only read in run().
func resolveProvider(ctx context.Context, providerFlag, apiKeyFlag, geminiEnvKey, anthropicEnvKey string) (asciiwiki.Provider, error) {
	provider := providerFlag

	// Auto-detect from env vars if no flag.
	if provider == "" {
		hasGemini := geminiEnvKey != ""
		hasAnthropic := anthropicEnvKey != ""
		switch {
		case hasGemini && hasAnthropic:
			return nil, fmt.Errorf("multiple API keys found (GEMINI_API_KEY, ANTHROPIC_API_KEY): use -provider flag to select")
		case hasGemini:
			provider = "gemini"
		case hasAnthropic:
			provider = "anthropic"
		default:
			return nil, fmt.Errorf("no API key found: set GEMINI_API_KEY or ANTHROPIC_API_KEY (or use -provider and -api-key flags)")
		}
	}

	// Resolve API key: explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "gemini":
		if key == "" {
			key = geminiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set: %w", asciiwiki.ErrMissingAPIKey)
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "anthropic":
		if key == "" {
			key = anthropicEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set: %w", asciiwiki.ErrMissingAPIKey)
		}
		client, err := anthropic.New(key)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"gemini\" or \"anthropic\"", provider)
	}
}
