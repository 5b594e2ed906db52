package scene

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// SpecularMode selects how the Phong highlight is combined with the
// diffuse color
type SpecularMode int

const (
	// SpecularFolded adds the highlight color to everything accumulated so
	// far and scales the sum by (R·V)^shininess
	SpecularFolded SpecularMode = iota
	// SpecularAdditive adds an independent highlight term scaled by (R·V)^shininess
	SpecularAdditive
)

// ParseSpecularMode maps "folded" and "additive" to a SpecularMode
func ParseSpecularMode(s string) (SpecularMode, error) {
	switch s {
	case "", "folded":
		return SpecularFolded, nil
	case "additive":
		return SpecularAdditive, nil
	}
	return SpecularFolded, xerrors.Errorf("unknown specular mode %q, want folded or additive", s)
}

func (m SpecularMode) String() string {
	if m == SpecularAdditive {
		return "additive"
	}
	return "folded"
}

// LightingConfig holds the tunables of local shading
type LightingConfig struct {
	ShadowRayOffset float64 // Distance shadow rays start off the surface
	Specular        SpecularMode
}

// DefaultLightingConfig returns the standard shading settings
func DefaultLightingConfig() LightingConfig {
	return LightingConfig{
		ShadowRayOffset: 1e-5,
		Specular:        SpecularFolded,
	}
}

// Lighting computes Phong shading at a surface point. view is the unit
// direction from the point back toward the viewer.
func (s *Scene) Lighting(point, normal, view core.Vec3, mat material.Phong, cfg LightingConfig) core.Vec3 {
	color := s.Ambience.MultiplyVec(mat.Ambient)

	for _, light := range s.Lights {
		sample := light.Sample(point)

		// Occluded lights contribute nothing
		shadowRay := core.Offset(point, sample.Direction, cfg.ShadowRayOffset)
		if hit, ok := s.Intersect(shadowRay); ok && hit.T < sample.Distance {
			continue
		}

		nl := sample.Direction.Dot(normal)
		if nl <= 0 {
			continue
		}
		color = color.Add(sample.Emission.MultiplyVec(mat.Diffuse).Multiply(nl))

		rv := view.Dot(sample.Direction.Mirror(normal))
		if rv <= 0 {
			continue
		}
		highlight := sample.Emission.MultiplyVec(mat.Specular)
		falloff := math.Pow(rv, mat.Shininess)
		switch cfg.Specular {
		case SpecularAdditive:
			color = color.Add(highlight.Multiply(falloff))
		default:
			color = color.Add(highlight).Multiply(falloff)
		}
	}

	return color
}
