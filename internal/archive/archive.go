// Package archive bundles the confirmed renames into a single zip: every
// ledger entry stored under its full assigned filename, plus a manifest.csv
// recording the original→assigned mapping with content hashes.
package archive

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"partsnap/internal/ledger"
	"partsnap/internal/naming"
)

// fixedModTime keeps archives byte-for-byte reproducible (1980-01-01 UTC).
var fixedModTime = time.Unix(315532800, 0).UTC()

// DefaultName returns the archive filename for a capture time.
func DefaultName(now time.Time) string {
	return "partsnap_" + now.Format("20060102_150405") + ".zip"
}

// Write bundles the ledger snapshot into w. A pair of photos confirmed with
// identical fields shares one full name; collisions get -1, -2 suffixes
// before the extension so no entry silently overwrites another.
func Write(w io.Writer, entries []ledger.Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("nothing to export: no images have been confirmed")
	}

	zw := zip.NewWriter(w)
	used := make(map[string]struct{})
	rows := [][]string{{"original", "assigned", "size_bytes", "md5", "confirmed_at"}}

	for _, e := range entries {
		full := uniqueName(naming.FullName(e.Assigned, e.Original), used)
		if err := writeEntry(zw, full, e.Content); err != nil {
			return err
		}
		rows = append(rows, []string{
			e.Original,
			full,
			strconv.Itoa(len(e.Content)),
			fmt.Sprintf("%x", md5.Sum(e.Content)),
			e.ConfirmedAt.UTC().Format(time.RFC3339),
		})
	}

	manifest, err := renderManifest(rows)
	if err != nil {
		return err
	}
	if err := writeEntry(zw, "manifest.csv", manifest); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// WriteFile writes the archive to path, removing the partial file on
// failure so a retry starts clean.
func WriteFile(path string, entries []ledger.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	h := &zip.FileHeader{Name: name, Method: zip.Deflate}
	h.SetMode(0o644)
	h.Modified = fixedModTime
	w, err := zw.CreateHeader(h)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// uniqueName appends -1, -2, ... before the extension until name is unused.
func uniqueName(name string, used map[string]struct{}) string {
	if _, ok := used[name]; !ok {
		used[name] = struct{}{}
		return name
	}
	base, ext := name, ""
	if i := strings.LastIndex(name, "."); i > 0 {
		base, ext = name[:i], name[i:]
	}
	for n := 1; ; n++ {
		alt := fmt.Sprintf("%s-%d%s", base, n, ext)
		if _, ok := used[alt]; !ok {
			used[alt] = struct{}{}
			return alt
		}
	}
}

func renderManifest(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}
	return buf.Bytes(), nil
}
