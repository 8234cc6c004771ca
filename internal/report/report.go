// Package report renders a review session summary as YAML, written beside
// the exported archive so the original→assigned mapping survives outside
// the zip.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"partsnap/internal/ledger"
	"partsnap/internal/naming"
)

// SessionInfo describes the review run that produced the renames.
type SessionInfo struct {
	SessionID   string `yaml:"sessionid"`
	Workbook    string `yaml:"workbook"`
	ImageFolder string `yaml:"imagefolder"`
	Profile     string `yaml:"profile,omitempty"`
	Images      int    `yaml:"images"`
	Confirmed   int    `yaml:"confirmed"`
	Archive     string `yaml:"archive,omitempty"`
	Timestamp   string `yaml:"timestamp"`
}

// Rename is one ledger entry in the report. Assigned carries the original's
// extension, matching the filename inside the archive before any collision
// suffix.
type Rename struct {
	Original    string `yaml:"original"`
	Assigned    string `yaml:"assigned"`
	SizeBytes   int    `yaml:"sizebytes"`
	ConfirmedAt string `yaml:"confirmedat"`
}

// Report is the complete session summary.
type Report struct {
	Session SessionInfo `yaml:"session"`
	Renames []Rename    `yaml:"renames"`
}

// Build assembles a report from a ledger snapshot. totalImages is the full
// sequence length, so the report shows unconfirmed leftovers at a glance.
// profilePath is empty when the default profile ran.
func Build(workbook, imageFolder, profilePath, archiveName string, totalImages int, entries []ledger.Entry) Report {
	r := Report{
		Session: SessionInfo{
			SessionID:   uuid.New().String(),
			Workbook:    workbook,
			ImageFolder: imageFolder,
			Profile:     profilePath,
			Images:      totalImages,
			Confirmed:   len(entries),
			Archive:     archiveName,
			Timestamp:   time.Now().Format("2006-01-02_15-04-05"),
		},
	}
	for _, e := range entries {
		r.Renames = append(r.Renames, Rename{
			Original:    e.Original,
			Assigned:    naming.FullName(e.Assigned, e.Original),
			SizeBytes:   len(e.Content),
			ConfirmedAt: e.ConfirmedAt.UTC().Format(time.RFC3339),
		})
	}
	return r
}

// Save writes the report as YAML to path.
func Save(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
