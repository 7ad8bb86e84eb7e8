package bubbletea

import (
	"sync/atomic"

	"github.com/rivo/uniseg"
	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// Banner is the terminal rendition of the native overlay collaborator: a
// single reverse-video line at the top of the screen with a show/hide
// lifecycle. Show and Hide may be called from outside the Bubble Tea loop,
// so visibility is atomic.
type Banner struct {
	text    string
	styles  Styles
	visible atomic.Bool
}

// Interface compliance check.
var _ asciiwiki.Overlay = (*Banner)(nil)

// NewBanner creates a hidden Banner with the given text.
func NewBanner(text string, styles Styles) *Banner {
	return &Banner{text: text, styles: styles}
}

// Show implements [asciiwiki.Overlay].
func (b *Banner) Show() error {
	b.visible.Store(true)
	return nil
}

// Hide implements [asciiwiki.Overlay].
func (b *Banner) Hide() error {
	b.visible.Store(false)
	return nil
}

// Visible reports whether the banner should be rendered.
func (b *Banner) Visible() bool {
	return b.visible.Load()
}

// View renders the banner line, truncated grapheme-aware to width.
func (b *Banner) View(width int) string {
	if !b.Visible() {
		return ""
	}
	return b.styles.Banner.Render(truncate(b.text, width-2))
}

// truncate cuts s to at most width display cells on grapheme boundaries.
func truncate(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}
	var out string
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := uniseg.StringWidth(cluster)
		if used+w+1 > width { // leave room for the ellipsis
			return out + "…"
		}
		out += cluster
		used += w
	}
	return out
}
