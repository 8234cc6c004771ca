package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if !p.RequireImplementer {
		t.Error("Default() must require the implementer field")
	}
	if p.DefaultUnit() != "kg" {
		t.Errorf("DefaultUnit() = %q, want kg", p.DefaultUnit())
	}
	if p.DefaultPhotoType() != "P" {
		t.Errorf("DefaultPhotoType() = %q, want P", p.DefaultPhotoType())
	}
	if p.DefaultNotes != "0" {
		t.Errorf("DefaultNotes = %q, want 0", p.DefaultNotes)
	}
	if !p.NamingOptions().RequireImplementer {
		t.Error("NamingOptions() dropped the implementer requirement")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := "require_implementer: false\nunits:\n  - g\n  - kg\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.RequireImplementer {
		t.Error("RequireImplementer = true, want override to false")
	}
	if want := []string{"g", "kg"}; !reflect.DeepEqual(p.Units, want) {
		t.Errorf("Units = %v, want %v", p.Units, want)
	}
	// Keys the file does not name keep their defaults.
	if p.DefaultPhotoType() != "P" {
		t.Errorf("DefaultPhotoType() = %q, want default P", p.DefaultPhotoType())
	}
	if p.DefaultNotes != "0" {
		t.Errorf("DefaultNotes = %q, want default 0", p.DefaultNotes)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Errorf("Load(\"\") = %+v, want Default()", p)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/profile.yaml"); err == nil {
		t.Error("Expected error for a missing profile file, got nil")
	}
}

func TestLoadRejectsEmptyLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("photo_types: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for empty photo_types, got nil")
	}
}
