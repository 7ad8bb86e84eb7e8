// Package mock provides test doubles for asciiwiki interfaces using
// function fields.
package mock

import (
	"context"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// Interface compliance check.
var _ asciiwiki.Provider = (*Provider)(nil)

// Provider is a test double for asciiwiki.Provider.
// Set the function fields for the methods you need.
type Provider struct {
	GenerateFn func(ctx context.Context, req asciiwiki.Request) (string, error)
	StreamFn   func(ctx context.Context, req asciiwiki.Request) (asciiwiki.Stream, error)
}

// Generate delegates to GenerateFn.
func (p *Provider) Generate(ctx context.Context, req asciiwiki.Request) (string, error) {
	return p.GenerateFn(ctx, req)
}

// Stream delegates to StreamFn.
func (p *Provider) Stream(ctx context.Context, req asciiwiki.Request) (asciiwiki.Stream, error) {
	return p.StreamFn(ctx, req)
}
