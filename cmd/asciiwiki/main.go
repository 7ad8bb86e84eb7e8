// Command asciiwiki is a terminal encyclopedia that renders generated
// ASCII art and a streamed definition for any topic word.
//
// Usage:
//
//	GEMINI_API_KEY=gk-...    asciiwiki [flags] [topic]
//	ANTHROPIC_API_KEY=sk-... asciiwiki [flags] [topic]
//
// With a topic argument the lookup is printed to stdout and the program
// exits; without one an interactive TUI starts.
//
// Flags:
//
//	-provider string   Provider: gemini, anthropic (auto-detected from env vars if omitted)
//	-model string      Model ID (default: provider default)
//	-style string      Art style name (default: classic)
//	-language string   Language for definitions and captions (default: English)
//	-api-key string    API key (overrides provider's env var)
//	-banner            Show the sponsored banner overlay
//	-hq                Allow slower, higher-quality generation
//	-plain             Print one lookup to stdout and exit (requires a topic)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	bt "github.com/samirahmmed/ascii-wiki1000/bubbletea"
	wikijson "github.com/samirahmmed/ascii-wiki1000/json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asciiwiki: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		providerFlag = flag.String("provider", "", "Provider: gemini, anthropic (auto-detected from env vars if omitted)")
		model        = flag.String("model", "", "Model ID (provider-specific)")
		styleName    = flag.String("style", asciiwiki.DefaultStyle, "Art style name")
		language     = flag.String("language", "English", "Language for definitions and captions")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		banner       = flag.Bool("banner", false, "Show the sponsored banner overlay")
		highQuality  = flag.Bool("hq", false, "Allow slower, higher-quality generation")
		plain        = flag.Bool("plain", false, "Print one lookup to stdout and exit (requires a topic)")
	)
	flag.Parse()

	directives, ok := asciiwiki.StyleDirectives(*styleName)
	if !ok {
		return fmt.Errorf("unknown style %q: known styles are %s",
			*styleName, strings.Join(asciiwiki.StyleNames(), ", "))
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Resolve provider. Env vars are read here and passed as values.
	provider, err := resolveProvider(ctx, *providerFlag, *apiKey,
		os.Getenv("GEMINI_API_KEY"), os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		return err
	}

	client := asciiwiki.New(provider,
		asciiwiki.WithModel(*model),
		asciiwiki.WithAuxiliaryText(true),
		asciiwiki.WithHighQuality(*highQuality),
	)

	// One-shot plain mode when a topic argument is given.
	topic := strings.TrimSpace(flag.Arg(0))
	if *plain && topic == "" {
		return fmt.Errorf("-plain requires a topic argument")
	}
	if topic != "" {
		return runPlain(ctx, client, topic, *language, directives)
	}

	return runTUI(ctx, client, *language, *styleName, *model, directives, *banner)
}

// runPlain prints one lookup to stdout without the TUI.
func runPlain(ctx context.Context, client *asciiwiki.Client, topic, language, directives string) error {
	result, err := client.GenerateArt(ctx, asciiwiki.ArtRequest{
		Topic:           topic,
		Language:        language,
		StyleDirectives: directives,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Art)
	if result.Text != "" {
		fmt.Println()
		fmt.Println(result.Text)
	}

	stream, err := client.StreamDefinition(ctx, topic, language)
	if err != nil {
		return err
	}
	defer stream.Close()

	fmt.Println()
	for {
		frag, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println()
			return err
		}
		fmt.Print(frag)
	}
	fmt.Println()
	return nil
}

func runTUI(ctx context.Context, client *asciiwiki.Client, language, styleName, model, directives string, showBanner bool) error {
	history := loadHistory()

	lookupFn := func(ctx context.Context, topic string, onEvent func(bt.Event)) error {
		result, err := client.GenerateArt(ctx, asciiwiki.ArtRequest{
			Topic:           topic,
			Language:        language,
			StyleDirectives: directives,
		})
		if err != nil {
			return err
		}
		onEvent(bt.ArtEvent{Result: result})

		stream, err := client.StreamDefinition(ctx, topic, language)
		if err != nil {
			return err
		}
		defer stream.Close()

		for {
			frag, streamErr := stream.Next()
			if streamErr == io.EOF {
				break
			}
			if streamErr != nil {
				// The trailing error fragment has already been delivered.
				return streamErr
			}
			onEvent(bt.FragmentEvent{Delta: frag})
		}

		definition, _ := stream.Text()
		history.Add(asciiwiki.Lookup{
			Topic:      topic,
			Language:   language,
			Style:      styleName,
			Art:        result.Art,
			Definition: definition,
			CreatedAt:  time.Now(),
		})
		return nil
	}

	randomFn := func(ctx context.Context) (string, error) {
		return client.RandomWord(ctx, language)
	}

	theme := asciiwiki.DefaultTheme()
	styles := bt.NewStyles(theme)

	// The banner overlay is shown only when the capability flag is on.
	var overlayBanner *bt.Banner
	if showBanner {
		overlayBanner = bt.NewBanner("ascii-wiki — your terminal encyclopedia", styles)
		if err := overlayBanner.Show(); err != nil {
			return fmt.Errorf("banner: %w", err)
		}
	}

	config := bt.Config{
		StyleName: styleName,
		ModelName: model,
		Language:  language,
	}
	tuiModel := bt.New(lookupFn, randomFn, overlayBanner, theme, config)

	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	// Save history on exit.
	if len(history.Lookups) > 0 {
		if err := wikijson.Save(historyPath(), *history); err != nil {
			return fmt.Errorf("save history: %w", err)
		}
	}

	return nil
}

// loadHistory reads the saved history, tolerating a missing file.
func loadHistory() *asciiwiki.History {
	h, err := wikijson.Load(historyPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "asciiwiki: ignoring unreadable history: %v\n", err)
		}
		return &asciiwiki.History{}
	}
	return &h
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".asciiwiki", "history.json")
}
