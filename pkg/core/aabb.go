package core

import "math"

// AABB is an axis-aligned bounding box
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a box from its two corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the smallest box containing every point.
// No points gives the zero box.
func NewAABBFromPoints(points ...Vec3) AABB {
	var box AABB
	for i, p := range points {
		if i == 0 {
			box = AABB{Min: p, Max: p}
			continue
		}
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Hit reports whether the ray meets the box at some t >= 0 (slab test).
// A zero direction component makes the slab distances infinite, so the
// slab is either always or never entered.
func (b AABB) Hit(ray Ray) bool {
	near, far := 0.0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		inv := 1.0 / ray.Direction.Axis(axis)
		t1 := (b.Min.Axis(axis) - ray.Origin.Axis(axis)) * inv
		t2 := (b.Max.Axis(axis) - ray.Origin.Axis(axis)) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		near = fmax(near, t1)
		far = fmin(far, t2)
		if near > far {
			return false
		}
	}
	return true
}

// fmax and fmin ignore a NaN operand, which appears as 0*Inf when the
// origin lies exactly on a slab boundary of a parallel ray
func fmax(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

func fmin(a, b float64) float64 {
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

// Center returns the midpoint of the box
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// IsValid reports whether Min <= Max on every axis
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}
