package scene

import (
	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/loaders"
)

// NewSCEScene creates a scene from a .sce file. Nothing is rendered from a
// file that fails to load.
func NewSCEScene(filepath string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	sceScene, err := loaders.LoadSCE(filepath)
	if err != nil {
		return nil, xerrors.Errorf("while loading scene file: %w", err)
	}

	scene, err := convertSCEScene(sceScene, cameraOverrides...)
	if err != nil {
		return nil, xerrors.Errorf("while building scene from %s: %w", filepath, err)
	}
	return scene, nil
}

// convertSCEScene turns parsed records into a renderable scene
func convertSCEScene(sceScene *loaders.SCEScene, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if sceScene.Camera == nil {
		return nil, xerrors.New("scene file has no camera record")
	}

	c := sceScene.Camera
	cameraConfig := cameraWithOverrides(geometry.CameraConfig{
		Eye:    c.Eye,
		Center: c.Center,
		Up:     c.Up,
		FovY:   c.FovY,
		Width:  c.Width,
		Height: c.Height,
	}, cameraOverrides...)

	scene := NewScene(cameraConfig)
	scene.MaxDepth = sceScene.MaxDepth
	scene.Background = sceScene.Background
	scene.Ambience = sceScene.Ambience

	for _, l := range sceScene.Lights {
		scene.AddLight(lights.NewPointLight(l.Position, l.Color))
	}

	for _, obj := range sceScene.Objects {
		shape, err := convertShape(obj)
		if err != nil {
			return nil, xerrors.Errorf("while converting %s at line %d: %w", obj.Type, obj.Line, err)
		}
		scene.Add(shape)
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// convertShape builds the primitive described by one object record
func convertShape(obj loaders.SCEObject) (geometry.Shape, error) {
	switch obj.Type {
	case "plane":
		return geometry.NewPlane(obj.Center, obj.Normal, obj.Material), nil
	case "sphere":
		return geometry.NewSphere(obj.Center, obj.Radius, obj.Material), nil
	case "cylinder":
		return geometry.NewCylinder(obj.Center, obj.Radius, obj.Axis, obj.Height, obj.Material), nil
	case "mesh":
		mode, err := geometry.ParseNormalMode(obj.NormalMode)
		if err != nil {
			return nil, err
		}
		data, err := loaders.LoadOFF(obj.MeshFile)
		if err != nil {
			return nil, err
		}
		mesh, err := geometry.NewMesh(data.Vertices, data.Faces, mode, obj.Material)
		if err != nil {
			return nil, err
		}
		glog.V(1).Infof("mesh %s: %d triangles, %s normals", obj.MeshFile, mesh.NumTriangles(), mode)
		return mesh, nil
	}
	return nil, xerrors.Errorf("unsupported object type %q", obj.Type)
}
