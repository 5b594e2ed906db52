package scene

import (
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is filled in
// before rendering starts and read concurrently, never modified, afterwards.
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape    // Objects in the scene, in load order
	Lights       []lights.PointLight // Lights in the scene, in load order
	Background   core.Vec3           // Color of rays that hit nothing
	Ambience     core.Vec3           // Global ambient light
	MaxDepth     int                 // Maximum number of mirror bounces
}

// Hit is the nearest intersection found by Scene.Intersect
type Hit struct {
	geometry.Intersection
	Shape geometry.Shape
}

// NewScene creates an empty scene viewed through the given camera
func NewScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
	}
}

// SetCamera replaces the camera, rebuilding its image plane
func (s *Scene) SetCamera(cameraConfig geometry.CameraConfig) {
	s.CameraConfig = cameraConfig
	s.Camera = geometry.NewCamera(cameraConfig)
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Intersect finds the nearest shape hit by the ray. Shapes are tested in
// order and an exact tie keeps the earlier shape.
func (s *Scene) Intersect(ray core.Ray) (Hit, bool) {
	var closest Hit
	found := false
	for _, shape := range s.Shapes {
		hit, ok := shape.Intersect(ray)
		if ok && (!found || hit.T < closest.T) {
			closest = Hit{Intersection: hit, Shape: shape}
			found = true
		}
	}
	return closest, found
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// GetTriangleCount returns the number of mesh triangles in the scene
func (s *Scene) GetTriangleCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.Mesh); ok {
			count += mesh.NumTriangles()
		}
	}
	return count
}

// Validate checks the scene is complete enough to render
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return xerrors.New("scene has no camera")
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return xerrors.Errorf("while validating camera: %w", err)
	}
	if s.MaxDepth < 0 {
		return xerrors.Errorf("max depth must be non-negative, got %d", s.MaxDepth)
	}
	for i, shape := range s.Shapes {
		if err := shape.GetMaterial().Validate(); err != nil {
			return xerrors.Errorf("while validating material of object %d: %w", i, err)
		}
	}
	return nil
}
