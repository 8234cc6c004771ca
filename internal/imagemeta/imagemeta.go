// Package imagemeta extracts lightweight metadata from part photos: the
// decoded format, pixel dimensions, and the EXIF capture time when present.
package imagemeta

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// photoExts lists the extensions accepted as part photos. RAW and HEIC
// formats are imported for renaming even though the standard codecs cannot
// decode their dimensions.
var photoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".heic": true,
	".hif":  true,
	".dng":  true,
	".arw":  true,
	".cr2":  true,
	".nef":  true,
	".raf":  true,
}

// IsPhoto reports whether a filename's extension marks a supported photo.
func IsPhoto(name string) bool {
	return photoExts[strings.ToLower(filepath.Ext(name))]
}

// Meta describes one photo's decoded properties. Zero values mean the
// property could not be read; a photo without decodable metadata is still
// renameable.
type Meta struct {
	Format     string
	Width      int
	Height     int
	CapturedAt time.Time
}

// Read extracts metadata from in-memory photo content. It never fails:
// undecodable content yields a zero Meta.
func Read(content []byte) Meta {
	var m Meta
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(content)); err == nil {
		m.Format = format
		m.Width = cfg.Width
		m.Height = cfg.Height
	}
	if x, err := exif.Decode(bytes.NewReader(content)); err == nil {
		if captured, err := x.DateTime(); err == nil {
			m.CapturedAt = captured
		}
	}
	return m
}
