package geometry

import (
	"math"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Translate shifts a wrapped object by a fixed offset. Instead of moving
// the object, the incoming ray is moved the opposite way and the resulting
// hit point is shifted back.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps an object with a translation
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit delegates to the wrapped object with the ray moved by -offset, then
// shifts the hit point by +offset
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.Ray{
		Origin:    ray.Origin.Subtract(t.Offset),
		Direction: ray.Direction,
		Time:      ray.Time,
	}

	hit, isHit := t.Object.Hit(moved, tMin, tMax)
	if !isHit {
		return nil, false
	}

	shifted := *hit
	shifted.Point = hit.Point.Add(t.Offset)
	return &shifted, true
}

// BoundingBox returns the wrapped object's box translated by the offset
func (t *Translate) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(timeFrom, timeTo)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// Rotate rotates a wrapped object about one coordinate axis by a fixed
// angle. Rays are rotated into object space before delegating; hit points
// and normals are rotated back into world space.
//
// The world-space bounding box is precomputed at construction for the time
// range the scene declares, so BoundingBox is a pure read and the scene
// graph stays immutable during rendering.
type Rotate struct {
	Object   core.Hittable
	sin, cos float64
	// axes[0] is the rotation axis; axes[1] and axes[2] span the rotation
	// plane, ordered so a positive angle follows the right-hand rule
	axes     [3]int
	timeFrom float64
	timeTo   float64
	box      core.AABB
	hasBox   bool
}

// NewRotateX rotates about the X axis by the given angle in degrees
func NewRotateX(object core.Hittable, degrees, timeFrom, timeTo float64) *Rotate {
	return newRotate(object, degrees, [3]int{0, 2, 1}, timeFrom, timeTo)
}

// NewRotateY rotates about the Y axis by the given angle in degrees
func NewRotateY(object core.Hittable, degrees, timeFrom, timeTo float64) *Rotate {
	return newRotate(object, degrees, [3]int{1, 0, 2}, timeFrom, timeTo)
}

// NewRotateZ rotates about the Z axis by the given angle in degrees
func NewRotateZ(object core.Hittable, degrees, timeFrom, timeTo float64) *Rotate {
	return newRotate(object, degrees, [3]int{2, 1, 0}, timeFrom, timeTo)
}

func newRotate(object core.Hittable, degrees float64, axes [3]int, timeFrom, timeTo float64) *Rotate {
	radians := degrees * math.Pi / 180
	r := &Rotate{
		Object:   object,
		sin:      math.Sin(radians),
		cos:      math.Cos(radians),
		axes:     axes,
		timeFrom: timeFrom,
		timeTo:   timeTo,
	}

	r.box, r.hasBox = r.computeBox(timeFrom, timeTo)
	return r
}

// computeBox builds the world-space box of the rotated object: the box of
// the child box's 8 rotated corners.
func (r *Rotate) computeBox(timeFrom, timeTo float64) (core.AABB, bool) {
	childBox, ok := r.Object.BoundingBox(timeFrom, timeTo)
	if !ok {
		return core.AABB{}, false
	}
	box := core.EmptyAABB()
	for corner := 0; corner < 8; corner++ {
		box = box.Include(r.toWorld(childBox.Corner(corner)))
	}
	return box, true
}

// toObject rotates a world-space vector into object space
func (r *Rotate) toObject(v core.Vec3) core.Vec3 {
	a := v.Component(r.axes[1])
	b := v.Component(r.axes[2])
	return v.
		WithComponent(r.axes[1], r.cos*a-r.sin*b).
		WithComponent(r.axes[2], r.sin*a+r.cos*b)
}

// toWorld rotates an object-space vector back into world space
func (r *Rotate) toWorld(v core.Vec3) core.Vec3 {
	a := v.Component(r.axes[1])
	b := v.Component(r.axes[2])
	return v.
		WithComponent(r.axes[1], r.cos*a+r.sin*b).
		WithComponent(r.axes[2], -r.sin*a+r.cos*b)
}

// Hit rotates the ray into object space, delegates, then rotates the hit
// point and normal back
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rotated := core.Ray{
		Origin:    r.toObject(ray.Origin),
		Direction: r.toObject(ray.Direction),
		Time:      ray.Time,
	}

	hit, isHit := r.Object.Hit(rotated, tMin, tMax)
	if !isHit {
		return nil, false
	}

	world := *hit
	world.Point = r.toWorld(hit.Point)
	world.Normal = r.toWorld(hit.Normal)
	return &world, true
}

// BoundingBox returns the precomputed world-space box for the time range
// given at construction. A query for a different range is answered with a
// fresh computation rather than the cached box.
func (r *Rotate) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	if timeFrom == r.timeFrom && timeTo == r.timeTo {
		return r.box, r.hasBox
	}
	return r.computeBox(timeFrom, timeTo)
}
