package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewCylinderScene creates a simple test scene with cylinders
func NewCylinderScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(0, 1.5, 5),
		Center: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   50,
		Width:  400,
		Height: 300,
	}

	s := NewScene(cameraWithOverrides(defaultCameraConfig, cameraOverrides...))
	s.Background = core.NewVec3(0.05, 0.05, 0.05)
	s.Ambience = core.NewVec3(0.15, 0.15, 0.15)
	s.MaxDepth = 3

	// Create materials
	gray := material.NewMatte(core.NewVec3(0.5, 0.5, 0.5))
	red := material.NewPhong(core.NewVec3(0.5, 0.1, 0.1), core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.5, 0.5, 0.5), 30, 0)
	blue := material.NewPhong(core.NewVec3(0.1, 0.1, 0.5), core.NewVec3(0.2, 0.2, 0.8), core.NewVec3(0.5, 0.5, 0.5), 30, 0)
	gold := material.NewPhong(core.NewVec3(0.4, 0.3, 0.1), core.NewVec3(0.8, 0.6, 0.2), core.NewVec3(1, 1, 1), 80, 0.4)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), gray),
		// Upright tube on the right
		geometry.NewCylinder(core.NewVec3(1.8, 1, 0), 0.5, core.NewVec3(0, 1, 0), 2, red),
		// Lying tube on the left
		geometry.NewCylinder(core.NewVec3(-1.8, 0.4, 0), 0.4, core.NewVec3(1, 0, 0.3), 1.6, blue),
		// Tilted open tube in the middle, looking partly down its bore
		geometry.NewCylinder(core.NewVec3(0, 1.1, 0), 0.35, core.NewVec3(0.1, 0.1, 1), 2.5, gold),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(3, 6, 4), core.NewVec3(0.8, 0.8, 0.8)))

	return s
}
