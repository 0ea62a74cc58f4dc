package renderer

import (
	"math"
	"testing"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/geometry"
	"github.com/calebgardner/weekend-raytracer/pkg/material"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Width = 4
	opts.Height = 4
	opts.SamplesPerPixel = 4
	opts.MaxDepth = 10
	opts.Workers = 1
	return opts
}

func TestRenderer_Render_EmptyWorldShowsBackground(t *testing.T) {
	background := NewSolidBackground(core.NewVec3(0.25, 0.5, 0.75))
	camera := NewCamera(testCameraConfig())

	r := New(geometry.NewWorld(), camera, background, testOptions())
	framebuffer, _ := r.Render()

	const tolerance = 1e-9
	for i, pixel := range framebuffer {
		if pixel.Subtract(core.NewVec3(0.25, 0.5, 0.75)).Length() > tolerance {
			t.Fatalf("Pixel %d: expected background color, got %v", i, pixel)
		}
	}
}

func TestRenderer_Render_ZeroDepthIsBlack(t *testing.T) {
	background := NewSolidBackground(core.NewVec3(1, 1, 1))
	camera := NewCamera(testCameraConfig())

	opts := testOptions()
	opts.MaxDepth = 0

	r := New(geometry.NewWorld(), camera, background, opts)
	framebuffer, _ := r.Render()

	for i, pixel := range framebuffer {
		if pixel != (core.Vec3{}) {
			t.Fatalf("Pixel %d: expected black at depth 0, got %v", i, pixel)
		}
	}
}

func TestRenderer_Render_EmissiveEnclosure(t *testing.T) {
	// The camera sits inside a glowing sphere, so every ray sees the
	// emission exactly once and terminates
	light := material.NewDiffuseLight(core.NewVec3(2, 2, 2))
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 5), 100, light))

	r := New(world, NewCamera(testCameraConfig()), NewSolidBackground(core.Vec3{}), testOptions())
	framebuffer, _ := r.Render()

	const tolerance = 1e-9
	for i, pixel := range framebuffer {
		if pixel.Subtract(core.NewVec3(2, 2, 2)).Length() > tolerance {
			t.Fatalf("Pixel %d: expected emission (2, 2, 2), got %v", i, pixel)
		}
	}
}

func TestRenderer_Render_SingleWorkerDeterministic(t *testing.T) {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	background := NewSkyBackground()

	first, _ := New(world, NewCamera(testCameraConfig()), background, testOptions()).Render()
	second, _ := New(world, NewCamera(testCameraConfig()), background, testOptions()).Render()

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Pixel %d: expected identical renders with a fixed seed, got %v and %v", i, first[i], second[i])
		}
	}
}

func TestRenderer_Render_RowOrientation(t *testing.T) {
	// A glowing floor below the camera must light the bottom rows of the
	// image, not the top
	light := material.NewDiffuseLight(core.NewVec3(5, 5, 5))
	world := geometry.NewWorld(geometry.NewXZRect(-100, 100, -100, 100, -10, light))

	opts := testOptions()
	opts.Width = 2
	opts.Height = 8

	config := testCameraConfig()
	config.AspectRatio = float64(opts.Width) / float64(opts.Height)

	r := New(world, NewCamera(config), NewSolidBackground(core.Vec3{}), opts)
	framebuffer, _ := r.Render()

	topRow := framebuffer[0]
	bottomRow := framebuffer[(opts.Height-1)*opts.Width]

	if topRow != (core.Vec3{}) {
		t.Errorf("Expected dark sky in the top row, got %v", topRow)
	}
	if bottomRow == (core.Vec3{}) {
		t.Error("Expected the glowing floor in the bottom row")
	}
}

func TestRenderer_Render_MultiWorkerCoversAllRows(t *testing.T) {
	background := NewSolidBackground(core.NewVec3(1, 1, 1))

	opts := testOptions()
	opts.Width = 8
	opts.Height = 16
	opts.Workers = 4

	r := New(geometry.NewWorld(), NewCamera(testCameraConfig()), background, opts)
	framebuffer, stats := r.Render()

	if len(framebuffer) != opts.Width*opts.Height {
		t.Fatalf("Expected %d pixels, got %d", opts.Width*opts.Height, len(framebuffer))
	}
	for i, pixel := range framebuffer {
		if pixel == (core.Vec3{}) {
			t.Fatalf("Pixel %d was never rendered", i)
		}
	}
	if stats.Workers != 4 {
		t.Errorf("Expected 4 workers in stats, got %d", stats.Workers)
	}
}

func TestRenderer_Render_Stats(t *testing.T) {
	opts := testOptions()
	r := New(geometry.NewWorld(), NewCamera(testCameraConfig()), NewSkyBackground(), opts)

	_, stats := r.Render()

	if stats.Width != opts.Width || stats.Height != opts.Height {
		t.Errorf("Expected %dx%d in stats, got %dx%d", opts.Width, opts.Height, stats.Width, stats.Height)
	}
	if stats.TotalSamples() != opts.Width*opts.Height*opts.SamplesPerPixel {
		t.Errorf("Expected %d total samples, got %d", opts.Width*opts.Height*opts.SamplesPerPixel, stats.TotalSamples())
	}
	if stats.Duration <= 0 {
		t.Error("Expected a positive render duration")
	}
}

func TestRenderer_Render_NaNFree(t *testing.T) {
	// A mixed scene with glass, metal, volume and lights must never produce
	// NaN pixels
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-2, 0, 0), 1, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)),
		geometry.NewSphere(core.NewVec3(2, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.2, 0.2))),
		geometry.NewConstantMedium(
			geometry.NewSphere(core.NewVec3(0, 0, 0), 3, material.NewDielectric(1.5)),
			0.1,
			material.NewIsotropic(core.NewVec3(0.9, 0.9, 0.9)),
		),
		geometry.NewXZRect(-5, 5, -5, 5, 4, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	r := New(world, NewCamera(testCameraConfig()), NewSkyBackground(), testOptions())
	framebuffer, _ := r.Render()

	for i, pixel := range framebuffer {
		if math.IsNaN(pixel.X) || math.IsNaN(pixel.Y) || math.IsNaN(pixel.Z) {
			t.Fatalf("Pixel %d is NaN: %v", i, pixel)
		}
		if pixel.X < 0 || pixel.Y < 0 || pixel.Z < 0 {
			t.Fatalf("Pixel %d has negative radiance: %v", i, pixel)
		}
	}
}
