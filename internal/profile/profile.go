// Package profile holds the review configuration: which of the two field
// sets is in force, the selectable units and photo type codes, and the
// defaults a fresh form starts from.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"partsnap/internal/naming"
)

// Profile configures a review session. Start from Default and override
// from a YAML file; the zero value has no selectable units.
type Profile struct {
	// RequireImplementer switches between the two field sets. When true
	// the implementer field is required and its identifier appears in
	// every composed filename.
	RequireImplementer bool `yaml:"require_implementer"`
	// Units are the selectable weight units, first one preselected.
	Units []string `yaml:"units"`
	// PhotoTypes are the single-letter shot codes, first one preselected.
	// P primary, B back, D detail in the default set.
	PhotoTypes []string `yaml:"photo_types"`
	// DefaultNotes seeds the notes field on every new image.
	DefaultNotes string `yaml:"default_notes"`
}

// Default returns the richer field set: implementer required.
func Default() Profile {
	return Profile{
		RequireImplementer: true,
		Units:              []string{"kg", "g", "t", "lb"},
		PhotoTypes:         []string{"P", "B", "D"},
		DefaultNotes:       "0",
	}
}

// Load reads a profile from a YAML file, starting from Default so the file
// only overrides the keys it names. An empty path returns Default.
func Load(path string) (Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return p, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	if len(p.Units) == 0 {
		return fmt.Errorf("units must not be empty")
	}
	if len(p.PhotoTypes) == 0 {
		return fmt.Errorf("photo_types must not be empty")
	}
	return nil
}

// DefaultUnit is the unit preselected on a fresh form.
func (p Profile) DefaultUnit() string {
	if len(p.Units) == 0 {
		return ""
	}
	return p.Units[0]
}

// DefaultPhotoType is the shot code preselected on every new image.
func (p Profile) DefaultPhotoType() string {
	if len(p.PhotoTypes) == 0 {
		return ""
	}
	return p.PhotoTypes[0]
}

// NamingOptions maps the profile onto the filename engine's options.
func (p Profile) NamingOptions() naming.Options {
	return naming.Options{RequireImplementer: p.RequireImplementer}
}
