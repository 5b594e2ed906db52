package material

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Phong describes how a surface responds to point lights and how much of
// the scene it mirrors. Colors are per-channel reflectances, nominally in [0,1].
type Phong struct {
	Ambient   core.Vec3 // Reflectance of the global ambient light
	Diffuse   core.Vec3 // Lambertian reflectance
	Specular  core.Vec3 // Highlight color
	Shininess float64   // Highlight exponent (>= 0)
	Mirror    float64   // Reflectivity: 0 = no reflection, 1 = perfect mirror
}

// NewPhong creates a new Phong material
func NewPhong(ambient, diffuse, specular core.Vec3, shininess, mirror float64) Phong {
	return Phong{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Mirror:    mirror,
	}
}

// NewMatte creates a non-reflective material with no highlight, using the
// same color for the ambient and diffuse terms.
func NewMatte(color core.Vec3) Phong {
	return Phong{Ambient: color, Diffuse: color}
}

// NewMirror creates a material that reflects the given fraction of the scene
// with a white highlight.
func NewMirror(color core.Vec3, mirror float64) Phong {
	return Phong{
		Ambient:   color,
		Diffuse:   color,
		Specular:  core.MonoVec(1),
		Shininess: 100,
		Mirror:    mirror,
	}
}

// IsReflective reports whether secondary mirror rays should be traced
func (m Phong) IsReflective() bool {
	return m.Mirror > 0
}

// Validate checks the scalar parameters are in range
func (m Phong) Validate() error {
	if m.Shininess < 0 {
		return xerrors.Errorf("shininess must be non-negative, got %g", m.Shininess)
	}
	if m.Mirror < 0 || m.Mirror > 1 {
		return xerrors.Errorf("mirror reflectivity must be in [0,1], got %g", m.Mirror)
	}
	return nil
}
