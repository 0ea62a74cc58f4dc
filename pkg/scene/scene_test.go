package scene

import (
	"math"
	"os"
	"sort"
	"testing"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// sceneNeedsTextures reports whether a scene loads image files from disk
func sceneNeedsTextures(name string) bool {
	return name == "earth" || name == "final"
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()

	if len(names) != len(Builders) {
		t.Fatalf("Expected %d names, got %d", len(Builders), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
	for _, name := range names {
		if Builders[name] == nil {
			t.Errorf("Expected a builder for %q", name)
		}
	}
}

func TestBuilders_ProduceRenderableScenes(t *testing.T) {
	for name, builder := range Builders {
		t.Run(name, func(t *testing.T) {
			if sceneNeedsTextures(name) {
				if _, err := os.Stat(defaultEarthTexture); err != nil {
					t.Skipf("Texture %s not available", defaultEarthTexture)
				}
			}

			sc, err := builder()
			if err != nil {
				t.Fatalf("Expected scene to build, got %v", err)
			}

			if sc.World == nil {
				t.Fatal("Expected a world")
			}
			if sc.Background == nil {
				t.Fatal("Expected a background")
			}
			if sc.ImageWidth <= 0 || sc.AspectRatio <= 0 || sc.SamplesPerPixel <= 0 {
				t.Fatalf("Expected positive render defaults, got width=%d aspect=%f spp=%d",
					sc.ImageWidth, sc.AspectRatio, sc.SamplesPerPixel)
			}
			if sc.Camera.VFov <= 0 || sc.Camera.VFov >= 180 {
				t.Fatalf("Expected a usable field of view, got %f", sc.Camera.VFov)
			}

			// Every scene must answer ray queries without panicking
			ray := core.NewRay(sc.Camera.LookFrom, sc.Camera.LookAt.Subtract(sc.Camera.LookFrom), TimeFrom)
			sc.World.Hit(ray, 0.001, math.Inf(1))
		})
	}
}

func TestDielectricSpheres_HollowShell(t *testing.T) {
	sc, err := DielectricSpheres()
	if err != nil {
		t.Fatalf("Expected scene to build, got %v", err)
	}

	// From the camera through the glass sphere's center: the outer surface
	// comes first, then the negative-radius inner shell just behind it
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-1, 0, -1), TimeFrom)

	outer, isHit := sc.World.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit on the glass sphere, but got miss")
	}
	expectedOuter := 1 - 0.5/math.Sqrt2
	if math.Abs(outer.T-expectedOuter) > 1e-9 {
		t.Fatalf("Expected outer surface at t=%f, got t=%f", expectedOuter, outer.T)
	}
	if !outer.FrontFace {
		t.Error("Expected a front face hit on the outer sphere")
	}

	inner, isHit := sc.World.Hit(ray, outer.T+1e-6, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit on the inner shell, but got miss")
	}
	expectedInner := 1 - 0.4/math.Sqrt2
	if math.Abs(inner.T-expectedInner) > 1e-9 {
		t.Fatalf("Expected inner shell at t=%f, got t=%f", expectedInner, inner.T)
	}
	// The inner shell's normals point toward its center, so entering it
	// from outside reads as a back face
	if inner.FrontFace {
		t.Error("Expected a back face hit on the negative-radius shell")
	}
}

func TestBuilders_Deterministic(t *testing.T) {
	// Two builds of the same randomized scene must agree, because scene
	// construction uses a fixed seed
	first, err := RandomSpheres()
	if err != nil {
		t.Fatalf("Expected scene to build, got %v", err)
	}
	second, err := RandomSpheres()
	if err != nil {
		t.Fatalf("Expected scene to build, got %v", err)
	}

	firstBox, ok := first.World.BoundingBox(TimeFrom, TimeTo)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	secondBox, _ := second.World.BoundingBox(TimeFrom, TimeTo)
	if firstBox != secondBox {
		t.Errorf("Expected identical worlds, got boxes %v and %v", firstBox, secondBox)
	}
}

func TestEarth_MissingTexture(t *testing.T) {
	if _, err := os.Stat(defaultEarthTexture); err == nil {
		t.Skip("Texture present, missing-file path not exercised")
	}

	if _, err := Earth(); err == nil {
		t.Error("Expected an error when the earth texture is missing")
	}
}
