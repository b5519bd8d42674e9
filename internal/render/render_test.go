package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func writeMesh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertPNGDimensions(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected an image at %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("file at %s is not a valid PNG: %v", path, err)
	}
	if cfg.Width != imageWidth || cfg.Height != imageHeight {
		t.Errorf("image is %dx%d, want %dx%d", cfg.Width, cfg.Height, imageWidth, imageHeight)
	}
}

func TestRenderValidMesh(t *testing.T) {
	meshPath := writeMesh(t, triangleOBJ)
	outPath := filepath.Join(t.TempDir(), "out.png")

	ok, msg := Render(meshPath, outPath)
	if !ok {
		t.Fatalf("Render failed on a valid mesh: %s", msg)
	}
	assertPNGDimensions(t, outPath)
}

func TestRenderUndersizedMeshShortCircuits(t *testing.T) {
	meshPath := writeMesh(t, "x")
	outPath := filepath.Join(t.TempDir(), "out.png")

	ok, msg := Render(meshPath, outPath)
	if ok {
		t.Fatal("Render should fail on an undersized mesh file")
	}
	if !strings.Contains(msg, "too small") {
		t.Errorf("message = %q, want mention of the size check", msg)
	}
	// The placeholder must still exist at the expected path and dimensions.
	assertPNGDimensions(t, outPath)
}

func TestRenderMeshWithoutFaces(t *testing.T) {
	meshPath := writeMesh(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\n")
	outPath := filepath.Join(t.TempDir(), "out.png")

	ok, msg := Render(meshPath, outPath)
	if ok {
		t.Fatal("Render should fail on a mesh with no faces")
	}
	if !strings.Contains(msg, "no faces") {
		t.Errorf("message = %q, want mention of missing faces", msg)
	}
	assertPNGDimensions(t, outPath)
}

func TestRenderMissingMeshFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.png")

	ok, _ := Render(filepath.Join(t.TempDir(), "nope.obj"), outPath)
	if ok {
		t.Fatal("Render should fail on a missing mesh file")
	}
	assertPNGDimensions(t, outPath)
}

func TestRenderOverwritesExistingOutput(t *testing.T) {
	meshPath := writeMesh(t, triangleOBJ)
	outPath := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(outPath, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, msg := Render(meshPath, outPath)
	if !ok {
		t.Fatalf("Render failed: %s", msg)
	}
	assertPNGDimensions(t, outPath)
}

func TestPlaceholder(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "placeholder.png")

	if err := Placeholder("ValueError: faces array is empty", outPath); err != nil {
		t.Fatalf("Placeholder failed: %v", err)
	}
	assertPNGDimensions(t, outPath)
}

func TestPlaceholderLongMessage(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "placeholder.png")

	long := strings.Repeat("a very long diagnostic line that must wrap instead of overflowing ", 20)
	if err := Placeholder(long, outPath); err != nil {
		t.Fatalf("Placeholder failed on a long message: %v", err)
	}
	assertPNGDimensions(t, outPath)
}

func TestPlaceholderUnwritablePath(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing-dir", "placeholder.png")

	if err := Placeholder("boom", outPath); err == nil {
		t.Error("expected an error for an unwritable target path")
	}
}

func TestRenderReportsNestedPlaceholderFailure(t *testing.T) {
	meshPath := writeMesh(t, "x")
	outPath := filepath.Join(t.TempDir(), "missing-dir", "out.png")

	ok, msg := Render(meshPath, outPath)
	if ok {
		t.Fatal("Render should fail")
	}
	if !strings.Contains(msg, "placeholder write also failed") {
		t.Errorf("message = %q, want the nested placeholder failure reported", msg)
	}
}
