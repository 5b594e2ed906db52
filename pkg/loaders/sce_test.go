package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

const twoSpheres = `# Scene: Two spheres
depth 3
camera 0 0 5  0 0 0  0 1 0  45 320 240
background 0.1 0.2 0.3   # sky
ambience 0.2 0.2 0.2

light 0 10 5  1 1 1
# red sphere
sphere 0 0 0  1    0.1 0 0  0.8 0 0  1 1 1  50 0.25
plane 0 -1 0  0 1 0    0.1 0.1 0.1  0.5 0.5 0.5  0 0 0  1 0
cylinder 2 0 0  0.5  0 1 0  2    0.1 0.1 0.1  0.2 0.2 0.8  0 0 0  1 0
mesh bunny.off PHONG   0 0 0  1 1 1  0 0 0  1 0.5
`

func TestParseSCE(t *testing.T) {
	scene, err := ParseSCE(strings.NewReader(twoSpheres), "scenes")
	if err != nil {
		t.Fatalf("ParseSCE failed: %v", err)
	}

	if scene.MaxDepth != 3 {
		t.Errorf("Expected depth 3, got %d", scene.MaxDepth)
	}

	wantCamera := &SCECamera{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   45,
		Width:  320,
		Height: 240,
	}
	if diff := cmp.Diff(wantCamera, scene.Camera); diff != "" {
		t.Errorf("Camera mismatch (-want +got):\n%s", diff)
	}
	if scene.Background != core.NewVec3(0.1, 0.2, 0.3) {
		t.Errorf("Unexpected background %v", scene.Background)
	}

	wantLights := []SCELight{{Position: core.NewVec3(0, 10, 5), Color: core.NewVec3(1, 1, 1)}}
	if diff := cmp.Diff(wantLights, scene.Lights); diff != "" {
		t.Errorf("Lights mismatch (-want +got):\n%s", diff)
	}

	wantObjects := []SCEObject{
		{
			Type:     "sphere",
			Center:   core.NewVec3(0, 0, 0),
			Radius:   1,
			Material: material.NewPhong(core.NewVec3(0.1, 0, 0), core.NewVec3(0.8, 0, 0), core.NewVec3(1, 1, 1), 50, 0.25),
			Line:     9,
		},
		{
			Type:     "plane",
			Center:   core.NewVec3(0, -1, 0),
			Normal:   core.NewVec3(0, 1, 0),
			Material: material.NewPhong(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5), core.Vec3{}, 1, 0),
			Line:     10,
		},
		{
			Type:     "cylinder",
			Center:   core.NewVec3(2, 0, 0),
			Radius:   0.5,
			Axis:     core.NewVec3(0, 1, 0),
			Height:   2,
			Material: material.NewPhong(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.2, 0.2, 0.8), core.Vec3{}, 1, 0),
			Line:     11,
		},
		{
			Type:       "mesh",
			MeshFile:   filepath.Join("scenes", "bunny.off"),
			NormalMode: "PHONG",
			Material:   material.NewPhong(core.Vec3{}, core.NewVec3(1, 1, 1), core.Vec3{}, 1, 0.5),
			Line:       12,
		},
	}
	if diff := cmp.Diff(wantObjects, scene.Objects); diff != "" {
		t.Errorf("Objects mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSCE_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{"unknown token", "depth 2\ntorus 0 0 0 1", ErrUnknownToken},
		{"truncated sphere", "sphere 0 0 0 1  0 0 0", ErrUnexpectedEOF},
		{"truncated camera", "camera 0 0 5 0 0 0", ErrUnexpectedEOF},
		{"bad number", "depth two", nil},
		{"bad float", "background 0 x 0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSCE(strings.NewReader(tt.input), ".")
			if err == nil {
				t.Fatal("Expected an error, got none")
			}
			if tt.sentinel != nil && !xerrors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestParseSCE_ErrorNamesLine(t *testing.T) {
	_, err := ParseSCE(strings.NewReader("depth 1\n\n  cone 1 2 3\n"), ".")
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected error mentioning line 3, got %v", err)
	}
}

func TestParseSCE_CommentsAndEmpty(t *testing.T) {
	scene, err := ParseSCE(strings.NewReader("# only comments\n   \n#depth 4\n"), ".")
	if err != nil {
		t.Fatalf("ParseSCE failed: %v", err)
	}
	if scene.Camera != nil || scene.MaxDepth != 0 || len(scene.Objects) != 0 {
		t.Errorf("Expected an empty scene, got %+v", scene)
	}
}

func TestLoadSCE_ResolvesMeshRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.sce")
	content := "mesh models/cube.off FLAT  0 0 0  1 1 1  0 0 0  1 0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	scene, err := LoadSCE(path)
	if err != nil {
		t.Fatalf("LoadSCE failed: %v", err)
	}
	if want := filepath.Join(dir, "models", "cube.off"); scene.Objects[0].MeshFile != want {
		t.Errorf("Expected mesh path %s, got %s", want, scene.Objects[0].MeshFile)
	}
}

func TestLoadSCE_MissingFile(t *testing.T) {
	if _, err := LoadSCE(filepath.Join(t.TempDir(), "missing.sce")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
