package bubbletea

import (
	"strings"

	rw "github.com/mattn/go-runewidth"
)

var _ Block = (*ArtBlock)(nil)

// ArtBlock renders ASCII art verbatim, horizontally centered. Lines are
// never wrapped or reflowed — alignment is the whole point of the art.
type ArtBlock struct {
	art    string
	styles Styles
}

// NewArtBlock creates an ArtBlock.
func NewArtBlock(art string, styles Styles) *ArtBlock {
	return &ArtBlock{art: art, styles: styles}
}

func (b *ArtBlock) View(width int) string {
	lines := strings.Split(strings.TrimRight(b.art, "\n"), "\n")

	// Center the widest line; all lines share the same left margin so the
	// art keeps its internal alignment.
	widest := 0
	for _, line := range lines {
		if w := rw.StringWidth(line); w > widest {
			widest = w
		}
	}
	margin := 0
	if widest < width {
		margin = (width - widest) / 2
	}
	pad := strings.Repeat(" ", margin)

	var out strings.Builder
	for i, line := range lines {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(pad)
		out.WriteString(b.styles.Art.Render(line))
	}
	return out.String()
}
