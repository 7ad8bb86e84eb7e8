package mock_test

import (
	"context"
	"errors"
	"testing"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"github.com/samirahmmed/ascii-wiki1000/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Delegates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	p := &mock.Provider{
		GenerateFn: func(_ context.Context, req asciiwiki.Request) (string, error) {
			assert.Equal(t, "hi", req.Prompt)
			return "hello", nil
		},
		StreamFn: func(_ context.Context, _ asciiwiki.Request) (asciiwiki.Stream, error) {
			return nil, wantErr
		},
	}

	text, err := p.Generate(context.Background(), asciiwiki.Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = p.Stream(context.Background(), asciiwiki.Request{Prompt: "hi"})
	assert.ErrorIs(t, err, wantErr)
}

func TestStream_NilSafeDefaults(t *testing.T) {
	t.Parallel()

	s := &mock.Stream{}
	assert.Equal(t, asciiwiki.StreamStateNew, s.State())
	assert.NoError(t, s.Close())
}
