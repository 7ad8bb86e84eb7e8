package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

var _ tea.Model = Model{}

// Config carries static display configuration for the TUI.
type Config struct {
	StyleName string // active art style, shown in the status line
	ModelName string // model ID, shown in the status line when set
	Language  string
}

// Model is the Bubble Tea model for the ascii-wiki TUI.
type Model struct {
	// Input is the topic input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	lookup LookupFunc
	random RandomFunc
	banner *Banner // nil when the overlay capability is off
	theme  asciiwiki.Theme
	styles Styles
	config Config

	blocks    []Block
	activeDef *DefinitionBlock // definition receiving fragments this lookup

	running bool
	cancel  context.CancelFunc
	eventCh chan Event
	doneCh  chan error
	err     error
	ready   bool
}

// New creates a new TUI Model. banner may be nil when the native overlay
// capability is off.
func New(lookup LookupFunc, random RandomFunc, banner *Banner, theme asciiwiki.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a word to look up..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:  ti,
		lookup: lookup,
		random: random,
		banner: banner,
		theme:  theme,
		styles: NewStyles(theme),
		config: config,
	}
}

// Running returns whether a lookup is currently running.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// SetRunningWithCancel is a test helper that puts the model in a running
// state with a cancel function.
func SetRunningWithCancel(m Model, cancel func()) (Model, tea.Cmd) {
	m.running = true
	m.cancel = cancel
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LookupEventMsg:
		m = m.processEvent(msg.Event)
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		if m.eventCh != nil {
			return m, listenForEvent(m.eventCh, m.doneCh)
		}
		return m, nil

	case LookupDoneMsg:
		m.running = false
		m.cancel = nil
		m.eventCh = nil
		m.doneCh = nil
		m.activeDef = nil
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
			m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
			m.Viewport.SetContent(m.renderContent())
			m.Viewport.GotoBottom()
		}
		cmd := m.Input.Focus()
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case RandomWordMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m.submitTopic(msg.Word)
	}

	// Pass remaining messages to sub-components.
	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	if m.banner != nil && m.banner.Visible() {
		b.WriteString(m.banner.View(m.Viewport.Width))
		b.WriteString("\n")
	}

	// Output area.
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	// Status line.
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	// Input area.
	b.WriteString(m.Input.View())

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	bannerHeight := 0
	if m.banner != nil && m.banner.Visible() {
		bannerHeight = 1
	}
	vpHeight := msg.Height - inputHeight - statusHeight - borderHeight - bannerHeight

	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.renderContent())
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		topic := strings.TrimSpace(m.Input.Value())
		if topic == "" {
			return m, nil
		}
		return m.submitTopic(topic)

	case tea.KeyCtrlR:
		if m.running || m.random == nil {
			return m, nil
		}
		return m, fetchRandomWord(m.random)
	}

	// When idle, pass keys to both input (for typing) and viewport
	// (for scrolling). Only forward non-character keys to viewport to avoid
	// conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitTopic(topic string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err = nil

	m.blocks = append(m.blocks, NewTopicBlock(topic, m.styles))
	m.activeDef = nil
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	// Set up channels and context for the lookup run.
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.eventCh = make(chan Event, 64)
	m.doneCh = make(chan error, 1)
	m.running = true

	m.Input.Blur()

	return m, tea.Batch(
		startLookup(m.lookup, ctx, topic, m.eventCh, m.doneCh),
		listenForEvent(m.eventCh, m.doneCh),
	)
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// processEvent routes a lookup event to the appropriate block.
func (m Model) processEvent(evt Event) Model {
	switch e := evt.(type) {
	case ArtEvent:
		m.blocks = append(m.blocks, NewArtBlock(e.Result.Art, m.styles))
		if e.Result.Text != "" {
			caption := NewDefinitionBlock(m.theme)
			caption.Append("*" + e.Result.Text + "*")
			m.blocks = append(m.blocks, caption)
		}
	case FragmentEvent:
		if m.activeDef == nil {
			m.activeDef = NewDefinitionBlock(m.theme)
			m.blocks = append(m.blocks, m.activeDef)
		}
		m.activeDef.Append(e.Delta)
	}
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Generating...")
	}
	hint := "Enter to look up · Ctrl+R random word · Ctrl+C to quit"
	info := "style: " + m.config.StyleName
	if m.config.ModelName != "" {
		info += " · model: " + m.config.ModelName
	}
	return m.styles.Muted.Render(hint + "  |  " + info)
}

// startLookup runs the lookup in a goroutine and signals completion.
func startLookup(lookup LookupFunc, ctx context.Context, topic string, eventCh chan<- Event, doneCh chan<- error) tea.Cmd {
	return func() tea.Msg {
		err := lookup(ctx, topic, func(e Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		close(eventCh)
		doneCh <- err
		return nil
	}
}

// listenForEvent waits for the next event from the channel.
// When the channel closes, it reads the error from doneCh and returns LookupDoneMsg.
func listenForEvent(ch <-chan Event, doneCh <-chan error) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			err := <-doneCh
			return LookupDoneMsg{Err: err}
		}
		return LookupEventMsg{Event: evt}
	}
}

// fetchRandomWord requests a random topic word off the main loop.
func fetchRandomWord(random RandomFunc) tea.Cmd {
	return func() tea.Msg {
		word, err := random(context.Background())
		return RandomWordMsg{Word: word, Err: err}
	}
}
