package renderer

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by forwarding to glog
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height  int
	TotalPixels    int           // Number of primary rays traced
	Workers        int           // Goroutines used
	ReflectionRays int64         // Mirror rays traced
	MaxDepth       int           // Reflection depth limit in effect
	Elapsed        time.Duration // Wall time of the render
}

// Renderer turns a scene into an image: one primary ray per pixel, traced
// column by column across the worker pool
type Renderer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger uses the default logger.
func NewRenderer(s *scene.Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, xerrors.Errorf("while validating render config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, xerrors.Errorf("while validating scene: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{scene: s, config: config, logger: logger}, nil
}

// Render traces the whole image. Each channel is clamped to at most 1.
// No image is returned if any column fails.
func (r *Renderer) Render() (*Image, RenderStats, error) {
	start := time.Now()

	camera := r.scene.Camera
	width, height := camera.Width(), camera.Height()

	tracer, err := NewTracer(r.scene, r.config)
	if err != nil {
		return nil, RenderStats{}, err
	}
	scheduler := NewScheduler(r.config.Workers)
	workers := scheduler.Workers(width)

	r.logger.Printf("Rendering %dx%d with %d workers, max depth %d", width, height, workers, tracer.MaxDepth())

	img := NewImage(width, height)
	white := core.MonoVec(1)
	err = scheduler.Run(width, func(x int) {
		for y := 0; y < height; y++ {
			ray := camera.PrimaryRay(float64(x), float64(y))
			img.Set(x, y, tracer.Trace(ray, 0).Min(white))
		}
	})
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:          width,
		Height:         height,
		TotalPixels:    width * height,
		Workers:        workers,
		ReflectionRays: tracer.ReflectionRays(),
		MaxDepth:       tracer.MaxDepth(),
		Elapsed:        time.Since(start),
	}
	r.logger.Printf("Rendered %d pixels (%d reflection rays) in %v", stats.TotalPixels, stats.ReflectionRays, stats.Elapsed)
	return img, stats, nil
}
