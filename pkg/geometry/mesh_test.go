package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// unitSquare is two triangles covering [0,1]x[0,1] at z=0, facing +z
func unitSquare(t *testing.T, mode NormalMode) *Mesh {
	t.Helper()
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	mesh, err := NewMesh(vertices, faces, mode, testMat)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	return mesh
}

func TestNewMesh_Validation(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	tests := []struct {
		name     string
		vertices []core.Vec3
		faces    [][3]int
		wantErr  bool
	}{
		{"valid", vertices, [][3]int{{0, 1, 2}}, false},
		{"index out of range", vertices, [][3]int{{0, 1, 3}}, true},
		{"negative index", vertices, [][3]int{{-1, 1, 2}}, true},
		{"no faces", vertices, nil, true},
		{"no vertices", nil, [][3]int{{0, 1, 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh(tt.vertices, tt.faces, FlatNormals, testMat)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%t, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMesh_Intersect(t *testing.T) {
	mesh := unitSquare(t, FlatNormals)

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{"first triangle", core.NewRay(core.NewVec3(0.75, 0.25, 3), core.NewVec3(0, 0, -1)), true, 3},
		{"second triangle", core.NewRay(core.NewVec3(0.25, 0.75, 2), core.NewVec3(0, 0, -1)), true, 2},
		{"from behind", core.NewRay(core.NewVec3(0.5, 0.25, -1), core.NewVec3(0, 0, 1)), true, 1},
		{"outside the square", core.NewRay(core.NewVec3(1.5, 0.5, 3), core.NewVec3(0, 0, -1)), false, 0},
		{"pointing away", core.NewRay(core.NewVec3(0.5, 0.5, 3), core.NewVec3(0, 0, 1)), false, 0},
		{"in the plane", core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := mesh.Intersect(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%t, got %t", tt.wantHit, ok)
			}
			if ok && math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.wantT, hit.T)
			}
			if ok {
				if diff := cmp.Diff(core.NewVec3(0, 0, 1), hit.Normal, approx); diff != "" {
					t.Errorf("Normal mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestMesh_NearestTriangleWins(t *testing.T) {
	// Two parallel triangles at z=0 and z=1
	vertices := []core.Vec3{
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1), core.NewVec3(0, 1, 1),
	}
	mesh, err := NewMesh(vertices, [][3]int{{0, 1, 2}, {3, 4, 5}}, FlatNormals, testMat)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected nearest triangle at t=4, got t=%f", hit.T)
	}
}

func TestMesh_VertexNormalsAreAngleWeighted(t *testing.T) {
	// Corner of a cube: three faces meeting at the origin with equal angles
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
	}
	faces := [][3]int{
		{0, 2, 1}, // z=0 plane, normal -z
		{0, 1, 3}, // y=0 plane, normal -y
		{0, 3, 2}, // x=0 plane, normal -x
	}
	mesh, err := NewMesh(vertices, faces, PhongNormals, testMat)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}

	want := core.NewVec3(-1, -1, -1).Normalize()
	if diff := cmp.Diff(want, mesh.VertexNormal(0), approx); diff != "" {
		t.Errorf("Vertex normal mismatch (-want +got):\n%s", diff)
	}
}

func TestMesh_PhongNormalsInterpolate(t *testing.T) {
	// A tent: two triangles sharing the ridge edge along y, tilted +-45 degrees
	vertices := []core.Vec3{
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 1),
		core.NewVec3(1, 0, 0),
	}
	faces := [][3]int{{0, 1, 2}, {1, 3, 2}}

	flat, err := NewMesh(vertices, faces, FlatNormals, testMat)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	smooth, err := NewMesh(vertices, faces, PhongNormals, testMat)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}

	// Aim just beside the ridge
	ray := core.NewRay(core.NewVec3(-0.001, 0.5, 5), core.NewVec3(0, 0, -1))
	flatHit, ok := flat.Intersect(ray)
	if !ok {
		t.Fatal("Expected flat hit")
	}
	smoothHit, ok := smooth.Intersect(ray)
	if !ok {
		t.Fatal("Expected smooth hit")
	}

	if math.Abs(flatHit.Normal.Z-math.Sqrt2/2) > 1e-9 {
		t.Errorf("Flat normal should be a face normal, got %v", flatHit.Normal)
	}
	if math.Abs(smoothHit.Normal.X) > 0.01 || smoothHit.Normal.Z < 0.99 {
		t.Errorf("Smooth normal near the ridge should point almost straight up, got %v", smoothHit.Normal)
	}
}

func TestParseNormalMode(t *testing.T) {
	if mode, err := ParseNormalMode("PHONG"); err != nil || mode != PhongNormals {
		t.Errorf("Expected PhongNormals, got %v, %v", mode, err)
	}
	if mode, err := ParseNormalMode("FLAT"); err != nil || mode != FlatNormals {
		t.Errorf("Expected FlatNormals, got %v, %v", mode, err)
	}
	if _, err := ParseNormalMode("smooth"); err == nil {
		t.Error("Expected an error for an unknown mode")
	}
}
