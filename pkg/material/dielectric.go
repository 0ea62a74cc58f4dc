package material

import (
	"math"
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts
type Dielectric struct {
	nonEmissive
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray through the surface using Snell's law, or
// reflects it when refraction is impossible (total internal reflection) or
// when a uniform draw falls below the Schlick reflectance. Clear glass
// absorbs nothing, so the attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, rnd *rand.Rand) (core.ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering the material
	} else {
		refractionRatio = d.RefractiveIndex // exiting into air
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rnd.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction, Time: rayIn.Time},
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Reflectance calculates Fresnel reflectance using Schlick's approximation:
// R0 + (1-R0)(1-cosθ)^5 with R0 = ((1-η)/(1+η))²
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
