package sequence

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"partsnap/internal/imagemeta"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	content := pngBytes(t)

	for _, name := range []string{"img10.jpg", "img2.jpg", "img1.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	// Neither of these may enter the sequence.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden.jpg"), content, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	seq, err := FromDir(dir)
	if err != nil {
		t.Fatalf("FromDir failed: %v", err)
	}

	want := []string{"img1.jpg", "img2.jpg", "img10.jpg"}
	if got := seq.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	h := seq.At(0)
	if h == nil {
		t.Fatal("At(0) = nil")
	}
	if h.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", h.Size, len(content))
	}
	if want := fmt.Sprintf("%x", md5.Sum(content)); h.MD5 != want {
		t.Errorf("MD5 = %s, want %s", h.MD5, want)
	}
	if h.Meta.Width != 2 || h.Meta.Height != 2 {
		t.Errorf("Meta dimensions = %dx%d, want 2x2", h.Meta.Width, h.Meta.Height)
	}
	if !bytes.Equal(h.Content, content) {
		t.Error("Content does not match the file on disk")
	}
}

func TestFromDirNoImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := FromDir(dir); err == nil {
		t.Error("Expected error for a folder without images, got nil")
	}
}

func TestFromDirMissing(t *testing.T) {
	if _, err := FromDir("/nonexistent/folder"); err == nil {
		t.Error("Expected error for a missing folder, got nil")
	}
}

func TestHandleKind(t *testing.T) {
	tests := []struct {
		name   string
		handle *Handle
		want   string
	}{
		{
			name:   "decoded format wins over the extension",
			handle: &Handle{Name: "IMG_001.CR2", Meta: imagemeta.Meta{Format: "jpeg"}},
			want:   "jpeg",
		},
		{
			name:   "undecodable content falls back to the extension",
			handle: &Handle{Name: "IMG_0042.CR2"},
			want:   "cr2",
		},
		{
			name:   "no format and no extension",
			handle: &Handle{Name: "capture"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.handle.Kind(); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAtOutOfRange(t *testing.T) {
	seq := FromHandles([]*Handle{{Name: "a.jpg"}})
	if seq.At(-1) != nil || seq.At(1) != nil {
		t.Error("At() out of range must return nil")
	}
	if seq.At(0) == nil {
		t.Error("At(0) = nil for a one-element sequence")
	}
}

func TestFromHandlesSorts(t *testing.T) {
	seq := FromHandles([]*Handle{
		{Name: "b2.jpg"},
		{Name: "b10.jpg"},
		{Name: "a.jpg"},
	})
	want := []string{"a.jpg", "b2.jpg", "b10.jpg"}
	if got := seq.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
