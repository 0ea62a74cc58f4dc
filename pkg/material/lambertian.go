package material

import (
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// nonEmissive provides the black Emit default shared by materials that
// only scatter light
type nonEmissive struct{}

// Emit returns black
func (nonEmissive) Emit(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmissive
	Albedo core.Texture // Base reflectance, solid or textured
}

// NewLambertian creates a diffuse material with a solid color albedo
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a diffuse material with a textured albedo
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a random direction biased toward the normal:
// the against-ray normal plus a random unit vector. If that sum is
// numerically near zero it would degenerate into NaNs downstream, so the
// bare normal is used instead.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, rnd *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rnd))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction, Time: rayIn.Time},
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
