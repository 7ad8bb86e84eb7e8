package bubbletea

import (
	"strings"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"github.com/samirahmmed/ascii-wiki1000/markdown"
)

var _ Block = (*DefinitionBlock)(nil)

// DefinitionBlock renders the streamed definition with markdown formatting.
// Definitions are short, so the whole content is re-rendered on each delta.
type DefinitionBlock struct {
	content strings.Builder
	theme   asciiwiki.Theme
}

// NewDefinitionBlock creates a new block for streamed definition text.
func NewDefinitionBlock(theme asciiwiki.Theme) *DefinitionBlock {
	return &DefinitionBlock{theme: theme}
}

// Append adds a text fragment from the definition stream.
func (b *DefinitionBlock) Append(text string) {
	b.content.WriteString(text)
}

func (b *DefinitionBlock) View(width int) string {
	return markdown.Render(b.content.String(), width, b.theme)
}
