package scene

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewMirrorScene creates a ring of mirrored spheres between two facing
// mirror walls, so reflections recurse until the depth limit
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:    core.NewVec3(0, 2, 7),
		Center: core.NewVec3(0, 0.8, 0),
		Up:     core.NewVec3(0, 1, 0),
		FovY:   45,
		Width:  400,
		Height: 300,
	}

	s := NewScene(cameraWithOverrides(defaultCameraConfig, cameraOverrides...))
	s.Background = core.NewVec3(0.2, 0.3, 0.5)
	s.Ambience = core.NewVec3(0.2, 0.2, 0.2)
	s.MaxDepth = 5

	floor := material.NewPhong(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.6, 0.6, 0.6), core.Vec3{}, 1, 0.1)
	wall := material.NewMirror(core.NewVec3(0.05, 0.05, 0.05), 0.8)
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(-4, 0, 0), core.NewVec3(1, 0, 0), wall),
		geometry.NewPlane(core.NewVec3(4, 0, 0), core.NewVec3(-1, 0, 0), wall),
	)

	// Ring of spheres with increasing reflectivity
	const count = 6
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / count
		center := core.NewVec3(1.8*math.Cos(angle), 0.5, 1.8*math.Sin(angle))
		hue := core.NewVec3(
			0.5+0.5*math.Cos(angle),
			0.5+0.5*math.Cos(angle+2*math.Pi/3),
			0.5+0.5*math.Cos(angle+4*math.Pi/3),
		)
		s.Add(geometry.NewSphere(center, 0.5, material.NewMirror(hue.Multiply(0.5), float64(i+1)/count)))
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewMirror(core.NewVec3(0.1, 0.1, 0.1), 0.9)))

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 8, 6), core.NewVec3(0.8, 0.8, 0.8)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-3, 3, -3), core.NewVec3(0.2, 0.2, 0.2)))

	return s
}
