package material

import (
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestPhong_Validate(t *testing.T) {
	tests := []struct {
		name      string
		material  Phong
		expectErr bool
	}{
		{"matte", NewMatte(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"perfect mirror", NewMirror(core.NewVec3(0, 0, 0), 1), false},
		{"negative shininess", NewPhong(core.Vec3{}, core.Vec3{}, core.Vec3{}, -1, 0), true},
		{"mirror above one", NewPhong(core.Vec3{}, core.Vec3{}, core.Vec3{}, 10, 1.5), true},
		{"negative mirror", NewPhong(core.Vec3{}, core.Vec3{}, core.Vec3{}, 10, -0.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected an error, got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPhong_IsReflective(t *testing.T) {
	if NewMatte(core.MonoVec(1)).IsReflective() {
		t.Error("Matte material should not be reflective")
	}
	if !NewMirror(core.MonoVec(1), 0.25).IsReflective() {
		t.Error("Mirror material should be reflective")
	}
}
