// Package json persists lookup history as versioned JSON files.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	asciiwiki "github.com/samirahmmed/ascii-wiki1000"
)

// envelope is the v1 wire format for persisted history.
type envelope struct {
	Version   int         `json:"version"`
	UpdatedAt time.Time   `json:"updated_at"`
	Lookups   []lookupDTO `json:"lookups"`
}

// lookupDTO is the JSON representation of a Lookup.
type lookupDTO struct {
	Topic      string    `json:"topic"`
	Language   string    `json:"language"`
	Style      string    `json:"style,omitempty"`
	Art        string    `json:"art"`
	Definition string    `json:"definition,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MarshalHistory serializes a History to JSON in v1 envelope format.
func MarshalHistory(h asciiwiki.History) ([]byte, error) {
	env := envelope{
		Version:   1,
		UpdatedAt: h.UpdatedAt,
		Lookups:   make([]lookupDTO, len(h.Lookups)),
	}
	for i, l := range h.Lookups {
		env.Lookups[i] = lookupDTO{
			Topic:      l.Topic,
			Language:   l.Language,
			Style:      l.Style,
			Art:        l.Art,
			Definition: l.Definition,
			CreatedAt:  l.CreatedAt,
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalHistory deserializes a History from JSON in v1 envelope format.
func UnmarshalHistory(data []byte) (asciiwiki.History, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return asciiwiki.History{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return asciiwiki.History{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	lookups := make([]asciiwiki.Lookup, len(env.Lookups))
	for i, dto := range env.Lookups {
		lookups[i] = asciiwiki.Lookup{
			Topic:      dto.Topic,
			Language:   dto.Language,
			Style:      dto.Style,
			Art:        dto.Art,
			Definition: dto.Definition,
			CreatedAt:  dto.CreatedAt,
		}
	}
	return asciiwiki.History{
		Lookups:   lookups,
		UpdatedAt: env.UpdatedAt,
	}, nil
}

// Save writes a History to a JSON file, creating parent directories as needed.
func Save(path string, h asciiwiki.History) error {
	data, err := MarshalHistory(h)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a History from a JSON file.
func Load(path string) (asciiwiki.History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return asciiwiki.History{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalHistory(data)
}
