package bubbletea

// Block is a renderable element in the lookup feed. View takes a width
// parameter so the root model controls layout and blocks are testable in
// isolation.
type Block interface {
	View(width int) string
}
