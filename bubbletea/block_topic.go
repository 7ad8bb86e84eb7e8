package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ Block = (*TopicBlock)(nil)

// TopicBlock renders the looked-up topic word as a heading.
type TopicBlock struct {
	topic  string
	styles Styles
}

// NewTopicBlock creates a TopicBlock.
func NewTopicBlock(topic string, styles Styles) *TopicBlock {
	return &TopicBlock{topic: topic, styles: styles}
}

func (b *TopicBlock) View(width int) string {
	content := b.styles.Topic.Render("» " + b.topic)
	return lipgloss.NewStyle().Width(width).Render(content)
}
