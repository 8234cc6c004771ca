package imagemeta

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestIsPhoto(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"IMG_001.jpg", true},
		{"IMG_001.JPG", true},
		{"scan.jpeg", true},
		{"diagram.png", true},
		{"capture.heic", true},
		{"photo.webp", true},
		{"legacy.bmp", true},
		{"raw.CR2", true},
		{"clip.mp4", false},
		{"notes.txt", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPhoto(tt.name); got != tt.want {
				t.Errorf("IsPhoto(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestReadPNG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}

	m := Read(buf.Bytes())
	if m.Format != "png" {
		t.Errorf("Format = %q, want png", m.Format)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Errorf("Dimensions = %dx%d, want 3x2", m.Width, m.Height)
	}
	if !m.CapturedAt.IsZero() {
		t.Errorf("CapturedAt = %v, want zero for a png without EXIF", m.CapturedAt)
	}
}

func TestReadUndecodable(t *testing.T) {
	m := Read([]byte("not an image at all"))
	if m.Format != "" || m.Width != 0 || m.Height != 0 || !m.CapturedAt.IsZero() {
		t.Errorf("Read of junk content = %+v, want zero Meta", m)
	}
}
