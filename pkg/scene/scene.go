// Package scene builds the worlds and cameras handed to the renderer.
// Scenes are constructed once, before rendering starts, and treated as
// immutable afterwards.
package scene

import (
	"math/rand"
	"sort"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/renderer"
)

// Shutter interval shared by every scene; moving geometry and BVH
// construction use the same range the cameras sample from.
const (
	TimeFrom = 0.0
	TimeTo   = 1.0
)

// Scene bundles a world, a camera description and render defaults
type Scene struct {
	World           core.Hittable
	Background      renderer.Background
	Camera          renderer.CameraConfig
	ImageWidth      int
	AspectRatio     float64
	SamplesPerPixel int
}

// Builders maps scene names to their constructors
var Builders = map[string]func() (*Scene, error){
	"random-spheres": RandomSpheres,
	"dielectric":     DielectricSpheres,
	"two-spheres":    TwoSpheres,
	"perlin-spheres": TwoPerlinSpheres,
	"earth":          Earth,
	"simple-light":   SimpleLight,
	"cornell-box":    CornellBox,
	"cornell-smoke":  CornellSmoke,
	"final":          FinalScene,
}

// Names returns the sorted scene names
func Names() []string {
	names := make([]string, 0, len(Builders))
	for name := range Builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newRand returns the deterministic random source scene construction
// uses, so a scene builds identically on every run
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
