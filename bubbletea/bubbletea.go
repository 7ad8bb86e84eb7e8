// Package bubbletea provides the Bubble Tea TUI for the ascii-wiki app.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// Event is a progress update from a running lookup.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// ArtEvent carries the validated art result.
type ArtEvent struct {
	Result asciiwiki.ArtResult
}

func (ArtEvent) event() {}

// FragmentEvent carries one streamed definition fragment.
type FragmentEvent struct {
	Delta string
}

func (FragmentEvent) event() {}

// Interface compliance checks.
var (
	_ Event = ArtEvent{}
	_ Event = FragmentEvent{}
)

// LookupFunc performs one full lookup: art generation followed by the
// streamed definition. The onEvent callback is called for each progress
// event. The function blocks until the lookup completes or ctx is cancelled.
type LookupFunc func(ctx context.Context, topic string, onEvent func(Event)) error

// RandomFunc fetches one random topic word.
type RandomFunc func(ctx context.Context) (string, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown — when cancelled,
// the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// LookupEventMsg wraps a lookup event for delivery to the Bubble Tea model.
type LookupEventMsg struct {
	Event Event
}

// LookupDoneMsg signals that a lookup has completed.
type LookupDoneMsg struct {
	Err error
}

// RandomWordMsg carries the result of a random word request.
type RandomWordMsg struct {
	Word string
	Err  error
}
