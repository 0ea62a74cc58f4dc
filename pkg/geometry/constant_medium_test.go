package geometry

import (
	"math"
	"testing"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/material"
)

func testMedium(density float64) *ConstantMedium {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	return NewConstantMedium(boundary, density, material.NewIsotropic(core.NewVec3(1, 1, 1)))
}

func TestConstantMedium_Hit_DenseMediumScattersInside(t *testing.T) {
	// At density 1e6 the expected free path is a micrometer, so every ray
	// through the volume scatters, strictly between entry and exit
	medium := testMedium(1e6)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	for i := 0; i < 100; i++ {
		hit, isHit := medium.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatal("Expected dense medium to scatter, but got miss")
		}
		if hit.T < 4.0 || hit.T > 6.0 {
			t.Fatalf("Expected scatter inside boundary (t in [4, 6]), got t=%f", hit.T)
		}
		if hit.Point.Subtract(ray.At(hit.T)).Length() > 1e-9 {
			t.Fatalf("Expected point on the ray, got %v at t=%f", hit.Point, hit.T)
		}
	}
}

func TestConstantMedium_Hit_MissesBoundary(t *testing.T) {
	medium := testMedium(1e6)
	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1), 0)

	if hit, isHit := medium.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss outside boundary, but got hit at t=%f", hit.T)
	}
}

func TestConstantMedium_Hit_OriginInsideBoundary(t *testing.T) {
	medium := testMedium(1e6)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	hit, isHit := medium.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected scatter for a ray starting inside, but got miss")
	}
	if hit.T < 0.001 || hit.T > 1.0 {
		t.Errorf("Expected scatter before exiting at t=1, got t=%f", hit.T)
	}
}

func TestConstantMedium_Hit_ThinMediumMostlyPassesThrough(t *testing.T) {
	// Expected free path is 1e6 units against a 2-unit chord, so scattering
	// is vanishingly unlikely over a few hundred rays
	medium := testMedium(1e-6)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	scattered := 0
	for i := 0; i < 500; i++ {
		if _, isHit := medium.Hit(ray, 0.001, math.Inf(1)); isHit {
			scattered++
		}
	}
	if scattered > 5 {
		t.Errorf("Expected a thin medium to rarely scatter, got %d of 500", scattered)
	}
}

func TestConstantMedium_Hit_PhaseMaterialAttached(t *testing.T) {
	phase := material.NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	medium := NewConstantMedium(boundary, 1e6, phase)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	hit, isHit := medium.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected scatter, but got miss")
	}
	if hit.Material != core.Material(phase) {
		t.Error("Expected the hit to carry the phase material, not the boundary's")
	}
}

func TestConstantMedium_BoundingBox_DelegatesToBoundary(t *testing.T) {
	medium := testMedium(0.01)

	box, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}

	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
	if box != expected {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}
