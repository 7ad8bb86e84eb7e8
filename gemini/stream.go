package gemini

import (
	"fmt"
	"io"
	"iter"
	"strings"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"google.golang.org/genai"
)

// stream implements [asciiwiki.Stream] by wrapping the genai SDK's streaming
// iterator. Each SDK response chunk becomes one text fragment; chunks that
// carry only thought parts are skipped.
type stream struct {
	pull  func() (*genai.GenerateContentResponse, error, bool)
	stop  func()
	state asciiwiki.StreamState
	text  strings.Builder
	err   error
}

// Interface compliance check.
var _ asciiwiki.Stream = (*stream)(nil)

func newStream(iterFn iter.Seq2[*genai.GenerateContentResponse, error]) *stream {
	next, stop := iter.Pull2(iterFn)
	return &stream{
		pull:  next,
		stop:  stop,
		state: asciiwiki.StreamStateNew,
	}
}

func (s *stream) Next() (string, error) {
	switch s.state {
	case asciiwiki.StreamStateComplete:
		return "", io.EOF
	case asciiwiki.StreamStateError:
		return "", s.err
	case asciiwiki.StreamStateClosed:
		return "", fmt.Errorf("gemini: %w", asciiwiki.ErrStreamClosed)
	}

	for {
		resp, err, ok := s.pull()
		if !ok {
			s.state = asciiwiki.StreamStateComplete
			s.stop()
			return "", io.EOF
		}
		if err != nil {
			s.state = asciiwiki.StreamStateError
			s.err = fmt.Errorf("gemini: %w", err)
			s.stop()
			return "", s.err
		}
		frag := responseText(resp)
		if frag == "" {
			// Thought-only or empty chunk; keep pulling.
			continue
		}
		s.state = asciiwiki.StreamStateStreaming
		s.text.WriteString(frag)
		return frag, nil
	}
}

func (s *stream) State() asciiwiki.StreamState {
	return s.state
}

func (s *stream) Text() (string, error) {
	if s.state == asciiwiki.StreamStateNew {
		return "", asciiwiki.ErrStreamNotReady
	}
	return s.text.String(), nil
}

func (s *stream) Close() error {
	if s.state != asciiwiki.StreamStateComplete && s.state != asciiwiki.StreamStateError {
		s.state = asciiwiki.StreamStateClosed
	}
	s.stop()
	return nil
}
