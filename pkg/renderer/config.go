package renderer

import (
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// RenderConfig contains the tunables of a render. Zero-valued fields in a
// config file keep their defaults only if they are omitted.
type RenderConfig struct {
	Workers             int     `yaml:"workers"`               // Parallel workers (0 = use CPU count)
	ShadowRayOffset     float64 `yaml:"shadow_ray_offset"`     // Start offset of shadow rays
	ReflectionRayOffset float64 `yaml:"reflection_ray_offset"` // Start offset of mirror rays
	Specular            string  `yaml:"specular"`              // "folded" or "additive"
	MaxDepthOverride    int     `yaml:"max_depth_override"`    // Replaces the scene depth when >= 0
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers:             0,
		ShadowRayOffset:     1e-5,
		ReflectionRayOffset: 1e-5,
		Specular:            "folded",
		MaxDepthOverride:    -1,
	}
}

// ParseRenderConfig reads YAML over the defaults. Unknown keys are errors.
func ParseRenderConfig(reader io.Reader) (RenderConfig, error) {
	config := DefaultRenderConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return RenderConfig{}, xerrors.Errorf("while decoding render config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return config, nil
}

// LoadRenderConfig loads a YAML render config file
func LoadRenderConfig(filename string) (RenderConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return RenderConfig{}, xerrors.Errorf("while opening render config: %w", err)
	}
	defer file.Close()

	config, err := ParseRenderConfig(file)
	if err != nil {
		return RenderConfig{}, xerrors.Errorf("while reading %s: %w", filename, err)
	}
	return config, nil
}

// Validate checks every field is in range
func (c RenderConfig) Validate() error {
	if c.Workers < 0 {
		return xerrors.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.ShadowRayOffset < 0 {
		return xerrors.Errorf("shadow_ray_offset must be non-negative, got %g", c.ShadowRayOffset)
	}
	if c.ReflectionRayOffset < 0 {
		return xerrors.Errorf("reflection_ray_offset must be non-negative, got %g", c.ReflectionRayOffset)
	}
	if _, err := scene.ParseSpecularMode(c.Specular); err != nil {
		return err
	}
	return nil
}

// LightingConfig returns the shading settings this config selects
func (c RenderConfig) LightingConfig() (scene.LightingConfig, error) {
	mode, err := scene.ParseSpecularMode(c.Specular)
	if err != nil {
		return scene.LightingConfig{}, err
	}
	return scene.LightingConfig{
		ShadowRayOffset: c.ShadowRayOffset,
		Specular:        mode,
	}, nil
}
