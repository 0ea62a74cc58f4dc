package material

import (
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Isotropic scatters light equally in every direction. It is the phase
// material for constant-density media (fog, smoke) and never reads the hit
// normal or surface coordinates, which volumes leave undefined.
type Isotropic struct {
	nonEmissive
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a textured albedo
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction inside the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, rnd *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: core.RandomInUnitSphere(rnd), Time: rayIn.Time},
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
