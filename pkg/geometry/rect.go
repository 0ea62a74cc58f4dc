package geometry

import (
	"math"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// rectPadding keeps rectangle bounding boxes from being degenerate along
// the zero-thickness axis
const rectPadding = 1e-4

// Rect is an axis-aligned rectangle: a bounded patch of the plane
// axis = k. One type covers all three orientations via an axis permutation,
// where axes[0] is the fixed (normal) axis and axes[1], axes[2] are the
// in-plane axes.
type Rect struct {
	A0, A1   float64 // bounds along the first in-plane axis
	B0, B1   float64 // bounds along the second in-plane axis
	K        float64 // offset along the fixed axis
	axes     [3]int
	Material core.Material
}

func newRect(a0, a1, b0, b1, k float64, axes [3]int, material core.Material) *Rect {
	if a0 >= a1 || b0 >= b1 {
		panic("geometry: rectangle bounds must be increasing")
	}
	return &Rect{A0: a0, A1: a1, B0: b0, B1: b1, K: k, axes: axes, Material: material}
}

// NewXYRect creates a rectangle in the plane z = k with x in [x0, x1] and
// y in [y0, y1]
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *Rect {
	return newRect(x0, x1, y0, y1, k, [3]int{2, 0, 1}, material)
}

// NewXZRect creates a rectangle in the plane y = k with x in [x0, x1] and
// z in [z0, z1]
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *Rect {
	return newRect(x0, x1, z0, z1, k, [3]int{1, 0, 2}, material)
}

// NewYZRect creates a rectangle in the plane x = k with y in [y0, y1] and
// z in [z0, z1]
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *Rect {
	return newRect(y0, y1, z0, z1, k, [3]int{0, 1, 2}, material)
}

// Hit intersects the ray with the constant-coordinate plane and rejects
// points outside the rectangle bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	normalAxis := r.axes[0]

	t := (r.K - ray.Origin.Component(normalAxis)) / ray.Direction.Component(normalAxis)
	if t < tMin || t > tMax || math.IsNaN(t) {
		return nil, false
	}

	point := ray.At(t)
	a := point.Component(r.axes[1])
	b := point.Component(r.axes[2])
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}

	outwardNormal := core.Vec3{}.WithComponent(normalAxis, 1)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the rectangle's box, padded along the zero-thickness
// axis so it is never degenerate
func (r *Rect) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	min := core.Vec3{}.
		WithComponent(r.axes[0], r.K-rectPadding).
		WithComponent(r.axes[1], r.A0).
		WithComponent(r.axes[2], r.B0)
	max := core.Vec3{}.
		WithComponent(r.axes[0], r.K+rectPadding).
		WithComponent(r.axes[1], r.A1).
		WithComponent(r.axes[2], r.B1)
	return core.NewAABB(min, max), true
}
