// Package pack provides the SQLite texture-pack archive format for
// reading and writing generated texture sets.
package pack

import "fmt"

// Metadata contains texture-pack metadata fields.
type Metadata struct {
	Name        string // Human-readable pack identifier
	Description string // Human-readable description
	Generator   string // Tool identifier
	Version     string // Version string
	Size        int    // Texture edge length in pixels
	Frames      int    // Animation frames per texture
	Seed        int64  // Base seed the pack was generated with
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Generator != "" {
		result["generator"] = m.Generator
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.Size > 0 {
		result["size"] = fmt.Sprintf("%d", m.Size)
	}
	if m.Frames > 0 {
		result["frames"] = fmt.Sprintf("%d", m.Frames)
	}
	result["seed"] = fmt.Sprintf("%d", m.Seed)

	return result
}
