package geometry

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Phong
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Phong) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// |O + tD - C|² = r²
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	var roots [2]float64
	n := core.SolveQuadratic(a, b, c, &roots)

	t, found := 0.0, false
	for _, root := range roots[:n] {
		if root > 0 && (!found || root < t) {
			t, found = root, true
		}
	}
	if !found {
		return Intersection{}, false
	}

	point := ray.At(t)
	return Intersection{
		Point:  point,
		Normal: point.Subtract(s.Center).Divide(s.Radius),
		T:      t,
	}, true
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Phong {
	return s.Material
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := core.MonoVec(s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
