package asciiwiki

import "context"

// Provider is a strategy pattern interface for generation backends.
//
// Generate performs one blocking call and returns the full response text.
// Stream performs one call and exposes the response as a pull-based
// fragment sequence. Both make exactly one outbound request per call.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Stream(ctx context.Context, req Request) (Stream, error)
}
