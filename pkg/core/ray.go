package core

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized here and the ray
// is never modified afterwards.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns a ray starting a small distance eps along direction from
// origin. Secondary rays use this to step off the surface they leave.
func Offset(origin, direction Vec3, eps float64) Ray {
	return NewRay(origin.Add(direction.Multiply(eps)), direction)
}
