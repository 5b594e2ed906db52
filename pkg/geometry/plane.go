package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// parallelThreshold is the smallest |dot(normal, direction)| treated as a
// crossing. Only exactly parallel rays are rejected; near-parallel rays hit
// far away.
const parallelThreshold = math.SmallestNonzeroFloat64

// Plane represents an infinite plane through a point
type Plane struct {
	Center   core.Vec3 // Any point on the plane
	Normal   core.Vec3 // Unit normal
	Material material.Phong
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(center, normal core.Vec3, mat material.Phong) *Plane {
	return &Plane{
		Center:   center,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelThreshold {
		return Intersection{}, false
	}

	t := p.Normal.Dot(p.Center.Subtract(ray.Origin)) / denominator
	if t <= 0 {
		return Intersection{}, false
	}

	return Intersection{
		Point:  ray.At(t),
		Normal: p.Normal,
		T:      t,
	}, true
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Phong {
	return p.Material
}
