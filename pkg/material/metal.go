package material

import (
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmissive
	Albedo    core.Vec3 // Metal color
	Fuzziness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzziness to [0, 1]
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	if fuzziness > 1.0 {
		fuzziness = 1.0
	}
	if fuzziness < 0.0 {
		fuzziness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter reflects the ray about the normal and perturbs it by
// fuzziness * a random point in the unit sphere. A perturbed direction
// that points into the surface is absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, rnd *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(rnd).Multiply(m.Fuzziness))

	if direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction, Time: rayIn.Time},
		Attenuation: m.Albedo,
	}, true
}
