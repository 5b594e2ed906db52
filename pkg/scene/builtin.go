package scene

import (
	"sort"

	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// builtInScene describes a scene constructed in code
type builtInScene struct {
	name        string
	description string
	create      func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtInScenes = []builtInScene{
	{"spheres", "Three Phong spheres on a matte floor", NewSpheresScene},
	{"cylinders", "Open cylinders at several orientations", NewCylinderScene},
	{"mirror", "Ring of mirrored spheres between mirror walls", NewMirrorScene},
	{"combo", "One of every primitive including a mesh", NewComboScene},
}

// ErrUnknownScene is returned for a built-in scene name that does not exist
var ErrUnknownScene = xerrors.New("unknown built-in scene")

// NewBuiltInScene creates the named built-in scene
func NewBuiltInScene(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, b := range builtInScenes {
		if b.name == name {
			return b.create(cameraOverrides...), nil
		}
	}
	return nil, xerrors.Errorf("%q: %w", name, ErrUnknownScene)
}

// BuiltInSceneNames returns the names of all built-in scenes, sorted
func BuiltInSceneNames() []string {
	names := make([]string, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		names = append(names, b.name)
	}
	sort.Strings(names)
	return names
}
