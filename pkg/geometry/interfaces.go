package geometry

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Intersection contains information about a ray-shape intersection
type Intersection struct {
	Point  core.Vec3 // Hit point in world space
	Normal core.Vec3 // Unit surface normal at the hit point
	T      float64   // Ray parameter, always positive
}

// Shape is implemented by every primitive a scene can hold.
// Shapes are immutable once built and safe for concurrent use.
type Shape interface {
	// Intersect returns the nearest hit with positive t, if any
	Intersect(ray core.Ray) (Intersection, bool)
	GetMaterial() material.Phong
}
