package material

import (
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It is the only source of
// radiance that is not carried in from elsewhere in the scene.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(color)}
}

// NewTexturedDiffuseLight creates a light emitting a textured color
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter absorbs the ray; lights never scatter
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, rnd *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emission texture's color unconditionally
func (d *DiffuseLight) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return d.Emission.Value(u, v, point)
}
