package asciiwiki

// StreamState indicates the current state of a Stream.
type StreamState int

const (
	StreamStateNew       StreamState = iota // Before Next() is ever called.
	StreamStateStreaming                    // Mid-stream, receiving fragments.
	StreamStateComplete                     // Next() returned io.EOF.
	StreamStateError                        // Next() returned non-EOF error.
	StreamStateClosed                       // Close() called before terminal state.
)

// Stream uses a pull-based iterator pattern. The sequence is finite and
// non-restartable; cancellation flows through the context passed to
// [Provider.Stream], or the caller simply stops consuming and calls Close.
//
// Next() returns the next text fragment, io.EOF on normal completion, or
// the terminal error. Once a terminal state is reached, Next() keeps
// returning the same result.
//
// Text() returns the accumulated text. Behavior by stream state:
//   - StreamStateComplete: complete text, nil error.
//   - StreamStateStreaming/StreamStateError/StreamStateClosed: fragments
//     received so far, nil error.
//   - StreamStateNew: empty string, non-nil error.
type Stream interface {
	Next() (string, error)
	State() StreamState
	Text() (string, error)
	Close() error
}
