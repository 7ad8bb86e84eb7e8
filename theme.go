package asciiwiki

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Topic      int // Topic line accent
	Art        int // ASCII art body
	Definition int // Definition prose
	Error      int // Error messages
	Success    int // Success indicators
	Muted      int // Status bar, placeholders
	Accent     int // Headings, links, style names
	Banner     int // Sponsored banner overlay
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Topic:      4,
		Art:        6,
		Definition: -1, // terminal default foreground
		Error:      1,
		Success:    2,
		Muted:      8,
		Accent:     5,
		Banner:     3,
	}
}
