// Package sequence imports a folder of part photos into the ordered working
// set a review session walks. Order is fixed at import time using a natural
// filename comparison, so img2 sorts before img10.
package sequence

import (
	"crypto/md5"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"partsnap/internal/imagemeta"
)

// MaxFileSize caps one photo at 10MB. Larger files are skipped at import
// with a warning instead of failing the whole folder.
const MaxFileSize = 10 * 1024 * 1024

// Handle is one imported photo, held in memory for the session lifetime.
// Handles are immutable after import.
type Handle struct {
	// Name is the original filename, extension included. It keys the
	// rename ledger.
	Name    string
	Path    string
	Size    int64
	MD5     string
	Meta    imagemeta.Meta
	Content []byte
}

// Kind is the detected image kind: the decoded format when the content was
// decodable, the lowercased filename extension otherwise (raw and heic
// files have no stdlib decoder).
func (h *Handle) Kind() string {
	if h.Meta.Format != "" {
		return h.Meta.Format
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(h.Name)), ".")
}

// Sequence is the ordered photo list. The order never changes after
// construction; the review cursor indexes into it.
type Sequence struct {
	handles []*Handle
}

// FromDir reads every supported photo directly inside dir, naturally
// ordered by filename. Hidden files and unsupported extensions are
// ignored. A folder without a single supported photo is an import failure.
func FromDir(dir string) (*Sequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %w", err)
	}

	var handles []*Handle
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !imagemeta.IsPhoto(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		if info.Size() > MaxFileSize {
			slog.Warn("Skipping oversized image", "name", entry.Name(), "size_bytes", info.Size())
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		handles = append(handles, &Handle{
			Name:    entry.Name(),
			Path:    path,
			Size:    info.Size(),
			MD5:     fmt.Sprintf("%x", md5.Sum(content)),
			Meta:    imagemeta.Read(content),
			Content: content,
		})
	}

	if len(handles) == 0 {
		return nil, fmt.Errorf("no supported images found in %s", dir)
	}

	sort.SliceStable(handles, func(i, j int) bool {
		return Less(handles[i].Name, handles[j].Name)
	})

	slog.Debug("Image folder imported", "dir", dir, "images", len(handles))
	return &Sequence{handles: handles}, nil
}

// FromHandles builds a sequence from pre-built handles, applying the same
// natural ordering as a folder import.
func FromHandles(handles []*Handle) *Sequence {
	ordered := make([]*Handle, len(handles))
	copy(ordered, handles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return Less(ordered[i].Name, ordered[j].Name)
	})
	return &Sequence{handles: ordered}
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.handles)
}

// At returns the handle at index i, nil when out of range.
func (s *Sequence) At(i int) *Handle {
	if s == nil || i < 0 || i >= len(s.handles) {
		return nil
	}
	return s.handles[i]
}

// Handles returns the ordered handles. The slice is a copy; the handles
// themselves are shared and must not be mutated.
func (s *Sequence) Handles() []*Handle {
	if s == nil {
		return nil
	}
	out := make([]*Handle, len(s.handles))
	copy(out, s.handles)
	return out
}

// Names lists the original filenames in sequence order.
func (s *Sequence) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.handles))
	for i, h := range s.handles {
		out[i] = h.Name
	}
	return out
}
