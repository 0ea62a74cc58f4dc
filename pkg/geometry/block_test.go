package geometry

import (
	"math"
	"testing"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

func TestBlock_Hit_NearestFace(t *testing.T) {
	block := NewBlock(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit front face",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit top face",
			rayOrigin:      core.NewVec3(0, 5, 0),
			rayDirection:   core.NewVec3(0, -1, 0),
			expectedT:      4,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "hit side face",
			rayOrigin:      core.NewVec3(-3, 0, 0),
			rayDirection:   core.NewVec3(1, 0, 0),
			expectedT:      2,
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, 0)
			hit, isHit := block.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			const tolerance = 1e-9
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBlock_Hit_FromInside(t *testing.T) {
	block := NewBlock(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	hit, isHit := block.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
}

func TestBlock_Hit_Miss(t *testing.T) {
	block := NewBlock(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1), 0)

	if hit, isHit := block.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestBlock_BoundingBox(t *testing.T) {
	block := NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), testMaterial())

	box, ok := block.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}

	expected := core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3))
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestNewBlock_ZeroVolumePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero-volume block")
		}
	}()

	NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), testMaterial())
}
