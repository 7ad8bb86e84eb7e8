package asciiwiki_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"github.com/samirahmmed/ascii-wiki1000/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateArt_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, req asciiwiki.Request) (string, error) {
			calls++
			assert.True(t, req.JSONResponse)
			require.NotNil(t, req.Temperature)
			assert.Zero(t, *req.Temperature)
			assert.Contains(t, req.Prompt, "gopher")
			return `{"art": " (o_o) "}`, nil
		},
	}
	client := asciiwiki.New(provider)

	result, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "gopher", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, " (o_o) ", result.Art)
	assert.Empty(t, result.Text)
	assert.Equal(t, 1, calls, "success must return immediately without further attempts")
}

func TestClient_GenerateArt_FencedResponse(t *testing.T) {
	t.Parallel()

	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			return "```json\n{\"art\": \"<=>\"}\n```", nil
		},
	}
	client := asciiwiki.New(provider)

	result, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "fish", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, "<=>", result.Art)
}

func TestClient_GenerateArt_RetriesEmptyArt(t *testing.T) {
	t.Parallel()

	responses := []string{
		`{"art": "   "}`,      // whitespace-only art: rejected
		`{"art": ""}`,         // empty art: rejected
		`{"art": "\\o/"}`,     // valid
	}
	calls := 0
	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			resp := responses[calls]
			calls++
			return resp, nil
		},
	}
	client := asciiwiki.New(provider)

	result, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "cheer", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, `\o/`, result.Art)
	assert.Equal(t, 3, calls, "exactly one call per attempt")
}

func TestClient_GenerateArt_ThirdAttemptSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			calls++
			switch calls {
			case 1:
				return "", errors.New("connection reset")
			case 2:
				return "not json at all", nil
			default:
				return `{"art": "[#]"}`, nil
			}
		},
	}
	client := asciiwiki.New(provider)

	result, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "crate", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, "[#]", result.Art)
	assert.Equal(t, 3, calls)
}

func TestClient_GenerateArt_Exhausted(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			calls++
			return "", fmt.Errorf("service unavailable (call %d)", calls)
		},
	}
	client := asciiwiki.New(provider)

	_, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "moon", Language: "English"})
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var exhausted *asciiwiki.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Contains(t, err.Error(), "service unavailable (call 3)", "only the last failure is surfaced")
}

func TestClient_GenerateArt_MaxAttemptsOption(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			calls++
			return "", errors.New("boom")
		},
	}
	client := asciiwiki.New(provider, asciiwiki.WithMaxAttempts(5))

	_, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "sun", Language: "English"})
	require.Error(t, err)
	assert.Equal(t, 5, calls)
	assert.Contains(t, err.Error(), "5 attempts")
}

func TestClient_GenerateArt_InvalidRequest(t *testing.T) {
	t.Parallel()

	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
			t.Fatal("provider must not be called for an invalid request")
			return "", nil
		},
	}
	client := asciiwiki.New(provider)

	_, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "", Language: "English"})
	assert.ErrorIs(t, err, asciiwiki.ErrValidation)

	_, err = client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "moon", Language: " "})
	assert.ErrorIs(t, err, asciiwiki.ErrValidation)
}

func TestClient_GenerateArt_AuxiliaryText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enabled  bool
		response string
		wantText string
	}{
		{
			name:     "enabled and present",
			enabled:  true,
			response: `{"art": "~", "text": "a wave"}`,
			wantText: "a wave",
		},
		{
			name:     "enabled but absent",
			enabled:  true,
			response: `{"art": "~"}`,
			wantText: "",
		},
		{
			name:     "disabled and present",
			enabled:  false,
			response: `{"art": "~", "text": "a wave"}`,
			wantText: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mock.Provider{
				GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
					return tt.response, nil
				},
			}
			client := asciiwiki.New(provider, asciiwiki.WithAuxiliaryText(tt.enabled))

			result, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "wave", Language: "English"})
			require.NoError(t, err)
			assert.Equal(t, "~", result.Art)
			assert.Equal(t, tt.wantText, result.Text)
		})
	}
}

func TestClient_GenerateArt_DefaultStyleFallback(t *testing.T) {
	t.Parallel()

	defaultDirectives, ok := asciiwiki.StyleDirectives(asciiwiki.DefaultStyle)
	require.True(t, ok)

	provider := &mock.Provider{
		GenerateFn: func(_ context.Context, req asciiwiki.Request) (string, error) {
			assert.Contains(t, req.Prompt, defaultDirectives)
			return `{"art": "*"}`, nil
		},
	}
	client := asciiwiki.New(provider)

	_, err := client.GenerateArt(context.Background(), asciiwiki.ArtRequest{Topic: "star", Language: "English"})
	require.NoError(t, err)
}

func TestClient_StreamDefinition_HappyPath(t *testing.T) {
	t.Parallel()

	frags := []string{"A gopher ", "is a rodent."}
	idx := 0
	inner := &mock.Stream{
		NextFn: func() (string, error) {
			if idx >= len(frags) {
				return "", io.EOF
			}
			f := frags[idx]
			idx++
			return f, nil
		},
		StateFn: func() asciiwiki.StreamState { return asciiwiki.StreamStateStreaming },
	}
	provider := &mock.Provider{
		StreamFn: func(_ context.Context, req asciiwiki.Request) (asciiwiki.Stream, error) {
			assert.Contains(t, req.Prompt, "gopher")
			return inner, nil
		},
	}
	client := asciiwiki.New(provider)

	s, err := client.StreamDefinition(context.Background(), "gopher", "English")
	require.NoError(t, err)
	defer s.Close()

	var got []string
	for {
		frag, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, frag)
	}
	assert.Equal(t, frags, got)

	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "A gopher is a rodent.", text)
}

func TestClient_StreamDefinition_MidStreamFailure(t *testing.T) {
	t.Parallel()

	upstreamErr := errors.New("stream reset")
	calls := 0
	inner := &mock.Stream{
		NextFn: func() (string, error) {
			calls++
			if calls == 1 {
				return "A gopher ", nil
			}
			return "", upstreamErr
		},
		StateFn: func() asciiwiki.StreamState { return asciiwiki.StreamStateStreaming },
	}
	provider := &mock.Provider{
		StreamFn: func(_ context.Context, _ asciiwiki.Request) (asciiwiki.Stream, error) {
			return inner, nil
		},
	}
	client := asciiwiki.New(provider)

	s, err := client.StreamDefinition(context.Background(), "gopher", "English")
	require.NoError(t, err)
	defer s.Close()

	// First fragment arrives intact.
	frag, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "A gopher ", frag)

	// The failure surfaces as one descriptive fragment first...
	frag, err = s.Next()
	require.NoError(t, err)
	assert.Contains(t, frag, "definition unavailable")
	assert.Contains(t, frag, "stream reset")

	// ...and then the operation fails.
	_, err = s.Next()
	require.ErrorIs(t, err, upstreamErr)

	// The terminal result is sticky.
	_, err = s.Next()
	require.ErrorIs(t, err, upstreamErr)
}

func TestClient_StreamDefinition_InvalidTopic(t *testing.T) {
	t.Parallel()

	provider := &mock.Provider{
		StreamFn: func(_ context.Context, _ asciiwiki.Request) (asciiwiki.Stream, error) {
			t.Fatal("provider must not be called for an invalid request")
			return nil, nil
		},
	}
	client := asciiwiki.New(provider)

	_, err := client.StreamDefinition(context.Background(), "  ", "English")
	assert.ErrorIs(t, err, asciiwiki.ErrValidation)
}

func TestClient_RandomWord(t *testing.T) {
	t.Parallel()

	t.Run("trims and unquotes", func(t *testing.T) {
		t.Parallel()

		calls := 0
		provider := &mock.Provider{
			GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
				calls++
				return "\n\"Lighthouse\".\n", nil
			},
		}
		client := asciiwiki.New(provider)

		word, err := client.RandomWord(context.Background(), "English")
		require.NoError(t, err)
		assert.Equal(t, "Lighthouse", word)
		assert.Equal(t, 1, calls)
	})

	t.Run("single attempt, no retry", func(t *testing.T) {
		t.Parallel()

		calls := 0
		provider := &mock.Provider{
			GenerateFn: func(_ context.Context, _ asciiwiki.Request) (string, error) {
				calls++
				return "", errors.New("quota exceeded")
			},
		}
		client := asciiwiki.New(provider)

		_, err := client.RandomWord(context.Background(), "English")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "random word")
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Equal(t, 1, calls)
	})

	t.Run("empty language", func(t *testing.T) {
		t.Parallel()

		client := asciiwiki.New(&mock.Provider{})
		_, err := client.RandomWord(context.Background(), "")
		assert.ErrorIs(t, err, asciiwiki.ErrValidation)
	})
}
