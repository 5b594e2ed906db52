package geometry

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Eye    core.Vec3 // Position of the camera
	Center core.Vec3 // Point the camera looks at; the image plane passes through it
	Up     core.Vec3 // Approximate up direction
	FovY   float64   // Vertical field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Eye.IsZero() {
		result.Eye = override.Eye
	}
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.FovY != 0 {
		result.FovY = override.FovY
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Validate checks the configuration describes a usable view
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return xerrors.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		return xerrors.Errorf("vertical field of view must be in (0,180), got %g", c.FovY)
	}
	view := c.Center.Subtract(c.Eye)
	if view.IsZero() {
		return xerrors.New("camera eye and center coincide")
	}
	if view.Cross(c.Up).IsZero() {
		return xerrors.New("camera up vector is parallel to the view direction")
	}
	return nil
}

// Camera maps pixel coordinates to primary rays. Pixel (0,0) is the lower
// left corner of the image plane; x grows rightward and y upward.
type Camera struct {
	config    CameraConfig
	xStep     core.Vec3
	yStep     core.Vec3
	lowerLeft core.Vec3
}

// NewCamera creates a camera and precomputes the image plane
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.update()
	return c
}

// update derives the image plane vectors from the configuration
func (c *Camera) update() {
	cfg := c.config
	w, h := float64(cfg.Width), float64(cfg.Height)

	view := cfg.Center.Subtract(cfg.Eye)
	dist := view.Length()
	view = view.Normalize()

	imageHeight := 2 * dist * math.Tan(0.5*cfg.FovY*math.Pi/180)
	imageWidth := w / h * imageHeight

	c.xStep = view.Cross(cfg.Up).Normalize().Multiply(imageWidth / w)
	c.yStep = c.xStep.Cross(view).Normalize().Multiply(imageHeight / h)
	c.lowerLeft = cfg.Center.
		Subtract(c.xStep.Multiply(w / 2)).
		Subtract(c.yStep.Multiply(h / 2))
}

// PrimaryRay returns the ray from the eye through pixel (x, y)
func (c *Camera) PrimaryRay(x, y float64) core.Ray {
	target := c.lowerLeft.Add(c.xStep.Multiply(x)).Add(c.yStep.Multiply(y))
	return core.NewRay(c.config.Eye, target.Subtract(c.config.Eye))
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}
