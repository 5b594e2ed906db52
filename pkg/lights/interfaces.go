package lights

import "github.com/df07/go-mirror-raytracer/pkg/core"

// LightSample describes a light as seen from a shading point
type LightSample struct {
	Point     core.Vec3 // Position of the light
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Emission  core.Vec3 // Light color
}
