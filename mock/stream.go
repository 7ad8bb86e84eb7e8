package mock

import asciiwiki "github.com/samirahmmed/ascii-wiki1000"

// Interface compliance check.
var _ asciiwiki.Stream = (*Stream)(nil)

// Stream is a test double for asciiwiki.Stream.
// Set the function fields for the methods you need. NextFn and TextFn panic
// when nil to catch missing setup. CloseFn and StateFn are nil-safe (no-op
// and zero value) because test code commonly calls defer stream.Close() and
// these methods rarely need custom behavior.
type Stream struct {
	NextFn  func() (string, error)
	StateFn func() asciiwiki.StreamState
	TextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (string, error) {
	return s.NextFn()
}

// State delegates to StateFn. Returns StreamStateNew when StateFn is nil.
func (s *Stream) State() asciiwiki.StreamState {
	if s.StateFn == nil {
		return asciiwiki.StreamStateNew
	}
	return s.StateFn()
}

// Text delegates to TextFn.
func (s *Stream) Text() (string, error) {
	return s.TextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
