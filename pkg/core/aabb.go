package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points. The corners must
// satisfy min <= max componentwise; anything else (including NaN) is a
// fatal construction error.
func NewAABB(min, max Vec3) AABB {
	if !(min.X <= max.X && min.Y <= max.Y && min.Z <= max.Z) {
		panic("core: invalid AABB, min must not exceed max")
	}
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity element for Merge: a box with +Inf minimum
// and -Inf maximum corners that contains nothing.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Hit tests if a ray intersects the box within (tMin, tMax) using the slab
// method: the ray's overlap interval with each axis-aligned slab is
// intersected, and the box is hit only if the final interval is non-empty.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		invD := 1.0 / ray.Direction.Component(axis)

		t0 := (aabb.Min.Component(axis) - origin) * invD
		t1 := (aabb.Max.Component(axis) - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Merge returns the tightest box containing both boxes. Merge is
// associative and commutative, and merging with EmptyAABB is an identity.
func (aabb AABB) Merge(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Include returns the box grown to contain the given point
func (aabb AABB) Include(point Vec3) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, point.X),
			Y: math.Min(aabb.Min.Y, point.Y),
			Z: math.Min(aabb.Min.Z, point.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, point.X),
			Y: math.Max(aabb.Max.Y, point.Y),
			Z: math.Max(aabb.Max.Z, point.Z),
		},
	}
}

// Translate returns the box shifted by the given offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{
		Min: aabb.Min.Add(offset),
		Max: aabb.Max.Add(offset),
	}
}

// Corner returns one of the 8 corners of the box. Bits 0, 1 and 2 of the
// index select the max (1) or min (0) corner on the X, Y and Z axes.
func (aabb AABB) Corner(index int) Vec3 {
	corner := aabb.Min
	if index&1 != 0 {
		corner.X = aabb.Max.X
	}
	if index&2 != 0 {
		corner.Y = aabb.Max.Y
	}
	if index&4 != 0 {
		corner.Z = aabb.Max.Z
	}
	return corner
}
