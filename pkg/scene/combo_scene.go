package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewComboScene creates a scene with one of every primitive, including an
// octahedron mesh shaded with interpolated normals
func NewComboScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(2, 3, 7),
		Center: core.NewVec3(0, 0.8, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   45,
		Width:  400,
		Height: 300,
	}

	s := NewScene(cameraWithOverrides(defaultCameraConfig, cameraOverrides...))
	s.Background = core.NewVec3(0, 0, 0)
	s.Ambience = core.NewVec3(0.1, 0.1, 0.1)
	s.MaxDepth = 4

	floor := material.NewPhong(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.2, 0.2, 0.2), 10, 0.3)
	chrome := material.NewMirror(core.NewVec3(0.1, 0.1, 0.1), 0.7)
	orange := material.NewPhong(core.NewVec3(0.5, 0.3, 0.1), core.NewVec3(0.9, 0.5, 0.1), core.NewVec3(0.5, 0.5, 0.5), 40, 0)
	teal := material.NewPhong(core.NewVec3(0.1, 0.4, 0.4), core.NewVec3(0.1, 0.7, 0.7), core.NewVec3(0.8, 0.8, 0.8), 60, 0.1)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewSphere(core.NewVec3(-1.5, 0.8, 0), 0.8, chrome),
		geometry.NewCylinder(core.NewVec3(1.5, 0.75, -0.5), 0.4, core.NewVec3(0, 1, 0), 1.5, orange),
	)

	octahedron, err := NewOctahedron(core.NewVec3(0, 0.7, 1.2), 0.7, geometry.PhongNormals, teal)
	if err == nil {
		s.Add(octahedron)
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(-3, 5, 5), core.NewVec3(0.6, 0.6, 0.6)))
	s.AddLight(lights.NewPointLight(core.NewVec3(4, 3, 3), core.NewVec3(0.4, 0.35, 0.3)))

	return s
}

// NewOctahedron builds a regular octahedron mesh around center
func NewOctahedron(center core.Vec3, radius float64, mode geometry.NormalMode, mat material.Phong) (*geometry.Mesh, error) {
	vertices := []core.Vec3{
		center.Add(core.NewVec3(radius, 0, 0)),
		center.Add(core.NewVec3(-radius, 0, 0)),
		center.Add(core.NewVec3(0, radius, 0)),
		center.Add(core.NewVec3(0, -radius, 0)),
		center.Add(core.NewVec3(0, 0, radius)),
		center.Add(core.NewVec3(0, 0, -radius)),
	}
	// Counter-clockwise seen from outside
	faces := [][3]int{
		{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
		{4, 3, 0}, {1, 3, 4}, {5, 3, 1}, {0, 3, 5},
	}
	return geometry.NewMesh(vertices, faces, mode, mat)
}
