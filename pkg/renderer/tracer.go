package renderer

import (
	"sync/atomic"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// Tracer computes the color seen along a ray, following mirror reflections
// up to the scene's depth limit. It only reads the scene and may be shared
// by all workers.
type Tracer struct {
	scene            *scene.Scene
	maxDepth         int
	reflectionOffset float64
	lighting         scene.LightingConfig
	reflectionRays   atomic.Int64
}

// NewTracer creates a tracer for the scene using the given render settings
func NewTracer(s *scene.Scene, config RenderConfig) (*Tracer, error) {
	lighting, err := config.LightingConfig()
	if err != nil {
		return nil, err
	}

	maxDepth := s.MaxDepth
	if config.MaxDepthOverride >= 0 {
		maxDepth = config.MaxDepthOverride
	}

	return &Tracer{
		scene:            s,
		maxDepth:         maxDepth,
		reflectionOffset: config.ReflectionRayOffset,
		lighting:         lighting,
	}, nil
}

// Trace returns the color seen along ray. depth counts the reflections that
// led to this ray; primary rays have depth 0.
func (t *Tracer) Trace(ray core.Ray, depth int) core.Vec3 {
	if depth > t.maxDepth {
		return core.Vec3{}
	}

	hit, ok := t.scene.Intersect(ray)
	if !ok {
		return t.scene.Background
	}

	mat := hit.Shape.GetMaterial()
	color := t.scene.Lighting(hit.Point, hit.Normal, ray.Direction.Negate(), mat, t.lighting)

	if mat.IsReflective() && depth < t.maxDepth {
		t.reflectionRays.Add(1)
		direction := ray.Direction.Reflect(hit.Normal)
		reflected := core.Offset(hit.Point, direction, t.reflectionOffset)
		color = color.Multiply(1 - mat.Mirror).Add(t.Trace(reflected, depth+1).Multiply(mat.Mirror))
	}

	return color
}

// MaxDepth returns the reflection depth limit in effect
func (t *Tracer) MaxDepth() int {
	return t.maxDepth
}

// ReflectionRays returns how many mirror rays have been traced so far
func (t *Tracer) ReflectionRays() int64 {
	return t.reflectionRays.Load()
}
