package anthropic

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// stream implements [asciiwiki.Stream] by parsing SSE events from an HTTP
// response body. Only text deltas are semantic; thinking deltas and
// bookkeeping events are skipped.
type stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	ctx     context.Context
	state   asciiwiki.StreamState
	text    strings.Builder
	err     error // terminal error, if any
}

// Interface compliance check.
var _ asciiwiki.Stream = (*stream)(nil)

func newStream(ctx context.Context, body io.ReadCloser) *stream {
	return &stream{
		body:    body,
		scanner: bufio.NewScanner(body),
		ctx:     ctx,
		state:   asciiwiki.StreamStateNew,
	}
}

// Next reads SSE events until the next text fragment.
// Returns io.EOF when the stream completes normally.
func (s *stream) Next() (string, error) {
	switch s.state {
	case asciiwiki.StreamStateComplete:
		return "", io.EOF
	case asciiwiki.StreamStateError:
		return "", s.err
	case asciiwiki.StreamStateClosed:
		return "", fmt.Errorf("anthropic: %w", asciiwiki.ErrStreamClosed)
	}

	for {
		eventType, data, err := s.readSSEEvent()
		if err != nil {
			s.terminate(err)
			return "", s.err
		}

		s.state = asciiwiki.StreamStateStreaming

		frag, err := s.processEvent(eventType, data)
		if err != nil {
			s.terminate(err)
			return "", s.err
		}

		// processEvent sets the terminal state on message_stop.
		if s.state == asciiwiki.StreamStateComplete {
			return "", io.EOF
		}

		if frag != "" {
			s.text.WriteString(frag)
			return frag, nil
		}
		// Non-semantic event (ping, message_start, etc.) - keep reading.
	}
}

// State returns the current stream state.
func (s *stream) State() asciiwiki.StreamState {
	return s.state
}

// Text returns the accumulated fragments.
func (s *stream) Text() (string, error) {
	if s.state == asciiwiki.StreamStateNew {
		return "", asciiwiki.ErrStreamNotReady
	}
	return s.text.String(), nil
}

// Close closes the underlying HTTP response body.
func (s *stream) Close() error {
	if s.state != asciiwiki.StreamStateComplete && s.state != asciiwiki.StreamStateError {
		s.state = asciiwiki.StreamStateClosed
	}
	return s.body.Close()
}

// terminate records a terminal error and sets the error state.
func (s *stream) terminate(err error) {
	s.state = asciiwiki.StreamStateError
	if s.ctx.Err() != nil {
		s.err = fmt.Errorf("anthropic: %w", s.ctx.Err())
		return
	}
	if err == io.EOF {
		// Normal completion via message_stop sets StreamStateComplete
		// before we reach here. Raw EOF means the stream ended unexpectedly.
		s.err = fmt.Errorf("anthropic: unexpected end of stream")
		return
	}
	s.err = err
}

// readSSEEvent reads lines until a complete SSE event is assembled.
// Returns the event type and the data payload.
func (s *stream) readSSEEvent() (string, string, error) {
	var eventType string
	var dataBuf strings.Builder

	for s.scanner.Scan() {
		line := s.scanner.Text()

		if line == "" {
			// Empty line signals end of event.
			if dataBuf.Len() > 0 {
				return eventType, dataBuf.String(), nil
			}
			// Empty event, keep reading.
			continue
		}

		if strings.HasPrefix(line, "event: ") {
			eventType = strings.TrimPrefix(line, "event: ")
		} else if strings.HasPrefix(line, "data: ") {
			if dataBuf.Len() > 0 {
				dataBuf.WriteByte('\n')
			}
			dataBuf.WriteString(strings.TrimPrefix(line, "data: "))
		}
		// Ignore comments (lines starting with ':') and unknown fields.
	}

	if err := s.scanner.Err(); err != nil {
		return "", "", fmt.Errorf("anthropic: %w", err)
	}

	// Scanner exhausted without error = EOF.
	if dataBuf.Len() > 0 {
		return eventType, dataBuf.String(), nil
	}
	return "", "", io.EOF
}

// processEvent maps an SSE event to a text fragment. Returns an empty
// fragment for non-semantic events.
func (s *stream) processEvent(eventType, data string) (string, error) {
	switch eventType {
	case "content_block_delta":
		var evt sseContentBlockDelta
		if err := json.Unmarshal([]byte(data), &evt); err != nil {
			return "", fmt.Errorf("anthropic: failed to parse content_block_delta: %w", err)
		}
		if evt.Delta.Type != "text_delta" {
			// Thinking and signature deltas are not surfaced.
			return "", nil
		}
		return evt.Delta.Text, nil
	case "message_stop":
		s.state = asciiwiki.StreamStateComplete
		return "", nil
	case "error":
		var evt sseError
		if err := json.Unmarshal([]byte(data), &evt); err != nil {
			return "", fmt.Errorf("anthropic: failed to parse error event: %w", err)
		}
		return "", fmt.Errorf("anthropic: %s: %s", evt.Error.Type, evt.Error.Message)
	default:
		// message_start, content_block_start/stop, message_delta, ping and
		// unknown event types carry no text.
		return "", nil
	}
}
