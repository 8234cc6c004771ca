package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}

func writeCSVWorkbook(t *testing.T, withImplementer bool) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"material.csv":   "Material Name,Material ID,Category\nAluminum,M01,Metal\nOak,M10,Wood\n",
		"processing.csv": "Name,ID\nAnodize,P02\nMilling,P03\n",
	}
	if withImplementer {
		files["implementer.csv"] = "Name,ID\nAlice,I03\n"
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

func writePhotoDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("Failed to encode fixture png: %v", err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestInspectCommand(t *testing.T) {
	workbook := writeCSVWorkbook(t, true)

	out, err := runCLI(t, "inspect", "--workbook", workbook)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	requireContains(t, out, "Materials (2)")
	requireContains(t, out, "Aluminum")
	requireContains(t, out, "M01")
	requireContains(t, out, "Metal")
	requireContains(t, out, "Processing methods (2)")
	requireContains(t, out, "Anodize")
	requireContains(t, out, "Implementers (1)")
	requireContains(t, out, "Alice")
}

func TestInspectLimit(t *testing.T) {
	workbook := writeCSVWorkbook(t, true)

	out, err := runCLI(t, "inspect", "--workbook", workbook, "--limit", "1")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	// Headings keep the full counts; the tables stop after one row.
	requireContains(t, out, "Materials (2)")
	requireContains(t, out, "Aluminum")
	if strings.Contains(out, "Oak") || strings.Contains(out, "Milling") {
		t.Error("limit 1 still prints rows past the first")
	}
}

func TestInspectWithoutImplementerSheet(t *testing.T) {
	workbook := writeCSVWorkbook(t, false)

	out, err := runCLI(t, "inspect", "--workbook", workbook)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "No implementer rows")
}

func TestInspectMissingWorkbook(t *testing.T) {
	_, err := runCLI(t, "inspect", "--workbook", filepath.Join(t.TempDir(), "nope.xlsx"))
	if err == nil {
		t.Fatal("Expected an error for a missing workbook")
	}
	if !strings.Contains(err.Error(), "failed to load lookup tables") {
		t.Errorf("error = %v, want lookup table failure", err)
	}
}

func TestScanCommand(t *testing.T) {
	photos := writePhotoDir(t, "img1.jpg", "img10.jpg", "img2.jpg")

	out, err := runCLI(t, "scan", "--images", photos)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	requireContains(t, out, "3 images")
	requireContains(t, out, "2x2")
	requireContains(t, out, "png")

	// Natural order puts img2 before img10.
	if strings.Index(out, "img2.jpg") > strings.Index(out, "img10.jpg") {
		t.Error("scan output not in natural sort order")
	}

	// The fixture files share one png, so the later two are flagged.
	requireContains(t, out, "same content as img1.jpg")
}

func TestScanEmptyFolder(t *testing.T) {
	_, err := runCLI(t, "scan", "--images", t.TempDir())
	if err == nil {
		t.Fatal("Expected an error for a folder without images")
	}
	if !strings.Contains(err.Error(), "no supported images") {
		t.Errorf("error = %v, want missing image failure", err)
	}
}

func TestReviewRejectsMissingImplementerRows(t *testing.T) {
	workbook := writeCSVWorkbook(t, false)
	photos := writePhotoDir(t, "img1.jpg")

	_, err := runCLI(t, "review", "--workbook", workbook, "--images", photos)
	if err == nil {
		t.Fatal("Expected an error when the default profile requires implementers")
	}
	if !strings.Contains(err.Error(), "implementer") {
		t.Errorf("error = %v, want implementer requirement failure", err)
	}
}
