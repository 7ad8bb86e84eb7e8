package asciiwiki

import "time"

// maxHistoryEntries bounds the history kept on disk.
const maxHistoryEntries = 50

// Lookup is one completed art lookup.
type Lookup struct {
	Topic      string
	Language   string
	Style      string
	Art        string
	Definition string
	CreatedAt  time.Time
}

// History is a bounded, most-recent-first list of lookups.
type History struct {
	Lookups   []Lookup
	UpdatedAt time.Time
}

// Add prepends a lookup and drops the oldest entries beyond the bound.
func (h *History) Add(l Lookup) {
	h.Lookups = append([]Lookup{l}, h.Lookups...)
	if len(h.Lookups) > maxHistoryEntries {
		h.Lookups = h.Lookups[:maxHistoryEntries]
	}
	h.UpdatedAt = l.CreatedAt
}
