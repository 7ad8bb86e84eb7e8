package bubbletea_test

import (
	"errors"
	"strings"
	"testing"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
	"github.com/samirahmmed/ascii-wiki1000/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyles() bubbletea.Styles {
	return bubbletea.NewStyles(asciiwiki.DefaultTheme())
}

func TestArtBlock_Centering(t *testing.T) {
	t.Parallel()

	t.Run("all lines share one margin", func(t *testing.T) {
		t.Parallel()

		art := " /\\\n/__\\"
		b := bubbletea.NewArtBlock(art, testStyles())

		// Widest line is 4 cells; at width 10 the margin is 3.
		lines := strings.Split(b.View(10), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "    /\\", lines[0])
		assert.Equal(t, "   /__\\", lines[1])
	})

	t.Run("art wider than viewport is not wrapped", func(t *testing.T) {
		t.Parallel()

		art := strings.Repeat("=", 40)
		b := bubbletea.NewArtBlock(art, testStyles())

		out := b.View(10)
		assert.Equal(t, art, out)
	})

	t.Run("trailing newline ignored", func(t *testing.T) {
		t.Parallel()

		b := bubbletea.NewArtBlock("*\n", testStyles())
		assert.NotContains(t, b.View(1), "\n")
	})
}

func TestTopicBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewTopicBlock("lighthouse", testStyles())
	assert.Contains(t, b.View(80), "» lighthouse")
}

func TestDefinitionBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewDefinitionBlock(asciiwiki.DefaultTheme())
	assert.Empty(t, b.View(80))

	b.Append("A tall tower ")
	b.Append("with a light.")
	assert.Contains(t, b.View(80), "A tall tower with a light.")
}

func TestErrorBlock(t *testing.T) {
	t.Parallel()

	b := bubbletea.NewErrorBlock(errors.New("no such topic"), testStyles())
	out := b.View(80)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "no such topic")
}
