package asciiwiki

// Overlay is an optional native overlay collaborator with a show/hide
// lifecycle — a banner surface supplied by the host environment. It is
// invoked only when the host reports the capability; everywhere else the
// app uses [NopOverlay].
type Overlay interface {
	Show() error
	Hide() error
}

// NopOverlay is an Overlay that does nothing.
type NopOverlay struct{}

// Interface compliance check.
var _ Overlay = NopOverlay{}

// Show implements [Overlay].
func (NopOverlay) Show() error { return nil }

// Hide implements [Overlay].
func (NopOverlay) Hide() error { return nil }
