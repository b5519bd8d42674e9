// Package render turns generated OBJ mesh files into PNG previews. Rendering
// is strictly best-effort: whatever goes wrong, a file always exists at the
// target path afterwards — either the real render or an error placeholder
// carrying the failure text.
package render

import (
	"fmt"
	"os"

	"github.com/fogleman/fauxgl"
)

const (
	imageWidth  = 800
	imageHeight = 600

	// Mesh files at or below this size cannot contain any geometry; reject
	// them before handing the path to the OBJ parser.
	minMeshBytes = 4
)

var (
	// Isometric-style camera looking down at the origin.
	cameraEye    = fauxgl.V(1, 1, 1)
	cameraCenter = fauxgl.V(0, 0, 0)
	cameraUp     = fauxgl.V(0, 0, 1)

	lightDirection  = fauxgl.V(0.75, 0.5, 1).Normalize()
	meshColor       = fauxgl.HexColor("#6C8EBF")
	backgroundColor = fauxgl.HexColor("#FFF8E3")
)

// Render loads the mesh at meshPath and writes a still PNG preview to
// outPath. On any failure (undersized file, parse error, no faces, write
// error) it writes an 800x600 error placeholder to outPath instead and
// returns ok=false with the failure text. It never returns without a file
// existing at outPath, unless the placeholder write itself fails — in which
// case the message says so.
func Render(meshPath, outPath string) (ok bool, message string) {
	if err := render(meshPath, outPath); err != nil {
		msg := err.Error()
		if perr := Placeholder(msg, outPath); perr != nil {
			return false, fmt.Sprintf("%s (placeholder write also failed: %v)", msg, perr)
		}
		return false, msg
	}
	return true, fmt.Sprintf("rendered to %s", outPath)
}

func render(meshPath, outPath string) error {
	info, err := os.Stat(meshPath)
	if err != nil {
		return fmt.Errorf("stat mesh file: %w", err)
	}
	if info.Size() <= minMeshBytes {
		return fmt.Errorf("mesh file %s is too small to contain geometry (%d bytes)", meshPath, info.Size())
	}

	mesh, err := fauxgl.LoadOBJ(meshPath)
	if err != nil {
		return fmt.Errorf("parse OBJ: %w", err)
	}
	if len(mesh.Triangles) == 0 {
		return fmt.Errorf("mesh %s has no faces", meshPath)
	}

	// Normalize whatever scale the model generated into the unit cube so the
	// fixed camera always has the scene in frame.
	mesh.BiUnitCube()
	mesh.SmoothNormalsThreshold(fauxgl.Radians(30))

	dc := fauxgl.NewContext(imageWidth, imageHeight)
	dc.ClearColorBufferWith(backgroundColor)

	aspect := float64(imageWidth) / float64(imageHeight)
	matrix := fauxgl.LookAt(cameraEye, cameraCenter, cameraUp).Perspective(50, aspect, 0.1, 100)

	shader := fauxgl.NewPhongShader(matrix, lightDirection, cameraEye)
	shader.ObjectColor = meshColor
	dc.Shader = shader
	dc.DrawMesh(mesh)

	if err := fauxgl.SavePNG(outPath, dc.Image()); err != nil {
		return fmt.Errorf("save render: %w", err)
	}
	return nil
}
