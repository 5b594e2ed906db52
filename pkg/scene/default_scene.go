package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// cameraWithOverrides applies the first override, if any, to the defaults
func cameraWithOverrides(defaults geometry.CameraConfig, overrides ...geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// NewSpheresScene creates three colored spheres on a matte floor
func NewSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(0, 1.5, 6),
		Center: core.NewVec3(0, 0.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   45,
		Width:  400,
		Height: 300,
	}

	s := NewScene(cameraWithOverrides(defaultCameraConfig, cameraOverrides...))
	s.Background = core.NewVec3(0.1, 0.1, 0.2)
	s.Ambience = core.NewVec3(0.2, 0.2, 0.2)
	s.MaxDepth = 2

	// Create materials
	floor := material.NewMatte(core.NewVec3(0.6, 0.6, 0.6))
	red := material.NewPhong(core.NewVec3(0.6, 0.1, 0.1), core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.6, 0.6, 0.6), 50, 0)
	green := material.NewPhong(core.NewVec3(0.1, 0.5, 0.1), core.NewVec3(0.2, 0.7, 0.2), core.NewVec3(0.4, 0.4, 0.4), 20, 0)
	blue := material.NewPhong(core.NewVec3(0.1, 0.1, 0.6), core.NewVec3(0.2, 0.2, 0.8), core.NewVec3(0.8, 0.8, 0.8), 100, 0.2)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewSphere(core.NewVec3(-1.2, 0.5, 0), 0.5, red),
		geometry.NewSphere(core.NewVec3(0, 0.75, -0.5), 0.75, green),
		geometry.NewSphere(core.NewVec3(1.2, 0.5, 0.3), 0.5, blue),
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(-4, 6, 5), core.NewVec3(0.7, 0.7, 0.7)))
	s.AddLight(lights.NewPointLight(core.NewVec3(5, 4, 2), core.NewVec3(0.3, 0.3, 0.35)))

	return s
}
