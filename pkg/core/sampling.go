package core

import "math/rand"

// RandomVec3 generates a vector with each component uniform in [min, max)
func RandomVec3(min, max float64, rnd *rand.Rand) Vec3 {
	span := max - min
	return Vec3{
		X: min + span*rnd.Float64(),
		Y: min + span*rnd.Float64(),
		Z: min + span*rnd.Float64(),
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling the enclosing cube
func RandomInUnitSphere(rnd *rand.Rand) Vec3 {
	for {
		p := RandomVec3(-1, 1, rnd)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random unit-length direction
func RandomUnitVector(rnd *rand.Rand) Vec3 {
	return RandomInUnitSphere(rnd).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the XY
// plane (for defocus blur lens sampling)
func RandomInUnitDisk(rnd *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rnd.Float64() - 1, Y: 2*rnd.Float64() - 1}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
