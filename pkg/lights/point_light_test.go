package lights

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 3), core.NewVec3(1, 0.5, 0.25))

	sample := light.Sample(core.NewVec3(0, 0, 0))

	want := LightSample{
		Point:     core.NewVec3(0, 4, 3),
		Direction: core.NewVec3(0, 0.8, 0.6),
		Distance:  5,
		Emission:  core.NewVec3(1, 0.5, 0.25),
	}
	if diff := cmp.Diff(want, sample, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Sample mismatch (-want +got):\n%s", diff)
	}
}

func TestPointLight_SampleAtLightPosition(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.MonoVec(1))

	sample := light.Sample(core.NewVec3(1, 1, 1))
	if sample.Distance != 0 {
		t.Errorf("Expected zero distance, got %f", sample.Distance)
	}
	if !sample.Direction.IsZero() || math.IsNaN(sample.Direction.X) {
		t.Errorf("Expected zero direction, got %v", sample.Direction)
	}
}
