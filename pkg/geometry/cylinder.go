package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Cylinder is an open tube around an axis through Center. Only the part
// within Height/2 of Center along the axis is solid; there are no caps.
type Cylinder struct {
	Center   core.Vec3
	Radius   float64
	Axis     core.Vec3 // Unit axis direction
	Height   float64
	Material material.Phong
}

// NewCylinder creates a new cylinder. The axis is normalized.
func NewCylinder(center core.Vec3, radius float64, axis core.Vec3, height float64, mat material.Phong) *Cylinder {
	return &Cylinder{
		Center:   center,
		Radius:   radius,
		Axis:     axis.Normalize(),
		Height:   height,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the cylinder's side
func (c *Cylinder) Intersect(ray core.Ray) (Intersection, bool) {
	// Remove the axial parts of the direction and origin offset, leaving a
	// 2D circle test in the plane perpendicular to the axis.
	oc := ray.Origin.Subtract(c.Center)
	dDotA := ray.Direction.Dot(c.Axis)
	ocDotA := oc.Dot(c.Axis)

	a := ray.Direction.Dot(ray.Direction) - dDotA*dDotA
	b := 2 * (ray.Direction.Dot(oc) - dDotA*ocDotA)
	cc := oc.Dot(oc) - ocDotA*ocDotA - c.Radius*c.Radius

	var roots [2]float64
	n := core.SolveQuadratic(a, b, cc, &roots)

	t, found := 0.0, false
	for _, root := range roots[:n] {
		if root <= 0 {
			continue
		}
		axial := ray.At(root).Subtract(c.Center).Dot(c.Axis)
		if 2*math.Abs(axial) >= c.Height {
			continue
		}
		if !found || root < t {
			t, found = root, true
		}
	}
	if !found {
		return Intersection{}, false
	}

	point := ray.At(t)
	return Intersection{
		Point:  point,
		Normal: c.normalAt(point, ray.Direction),
		T:      t,
	}, true
}

// normalAt returns the radial unit normal at a point on the surface, turned
// to face against the incoming direction so inner hits shade correctly.
func (c *Cylinder) normalAt(point, direction core.Vec3) core.Vec3 {
	rel := point.Subtract(c.Center)
	radial := rel.Subtract(c.Axis.Multiply(rel.Dot(c.Axis))).Divide(c.Radius)
	if radial.Dot(direction) > 0 {
		return radial.Negate()
	}
	return radial
}

// GetMaterial returns the cylinder's material
func (c *Cylinder) GetMaterial() material.Phong {
	return c.Material
}
