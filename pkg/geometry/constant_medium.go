package geometry

import (
	"math"
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// entryExitEpsilon is how far past the entry point the exit probe starts,
// to avoid re-hitting the entry surface
const entryExitEpsilon = 1e-5

// ConstantMedium models a homogeneous scattering volume such as fog or
// smoke filling a boundary geometry. A ray passing through the volume
// scatters after an exponentially distributed distance; the denser the
// medium, the sooner it scatters. The phase material must be one that
// ignores normals and surface coordinates (Isotropic), because a volume
// scattering point has neither.
type ConstantMedium struct {
	Boundary core.Hittable
	Phase    core.Material
	// Negative reciprocal of the density, precomputed for the
	// -ln(U)/density scatter-distance sample
	negInvDensity float64
}

// NewConstantMedium creates a constant-density medium inside the boundary
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Phase:         phase,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and exits the boundary and samples an
// exponential scatter distance in between. The entry probe runs over the
// whole real line because the ray origin may already be inside the medium.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !isHit {
		return nil, false
	}
	tEntry := math.Max(tMin, entry.T)

	exit, isHit := m.Boundary.Hit(ray, tEntry+entryExitEpsilon, tMax)
	if !isHit {
		return nil, false
	}
	tExit := math.Min(tMax, exit.T)

	if tEntry >= tExit {
		return nil, false
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEntry) * rayLength
	scatterDistance := m.negInvDensity * math.Log(rand.Float64())
	if scatterDistance > distanceInside {
		return nil, false
	}

	t := tEntry + scatterDistance/rayLength

	// The isotropic phase material never reads the normal or surface
	// coordinates, so they are left undefined.
	return &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(math.NaN(), math.NaN(), math.NaN()),
		U:        math.NaN(),
		V:        math.NaN(),
		Material: m.Phase,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(timeFrom, timeTo)
}
