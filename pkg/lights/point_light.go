package lights

import "github.com/df07/go-mirror-raytracer/pkg/core"

// PointLight emits the same color in every direction from a single point.
// It is immutable after creation.
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}

// Sample returns the direction and distance from point to the light
func (l PointLight) Sample(point core.Vec3) LightSample {
	toLight := l.Position.Subtract(point)
	return LightSample{
		Point:     l.Position,
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Emission:  l.Color,
	}
}
