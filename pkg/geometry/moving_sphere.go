package geometry

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two keyframe
// positions over a time interval. Rays carry a time, and the sphere is
// intersected at its position for that instant, producing motion blur.
type MovingSphere struct {
	CenterFrom core.Vec3
	CenterTo   core.Vec3
	TimeFrom   float64
	TimeTo     float64
	Radius     float64
	Material   core.Material
}

// NewMovingSphere creates a sphere moving from centerFrom at timeFrom to
// centerTo at timeTo
func NewMovingSphere(centerFrom, centerTo core.Vec3, timeFrom, timeTo, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		CenterFrom: centerFrom,
		CenterTo:   centerTo,
		TimeFrom:   timeFrom,
		TimeTo:     timeTo,
		Radius:     radius,
		Material:   material,
	}
}

// CenterAt returns the interpolated center position at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	ratio := (time - s.TimeFrom) / (s.TimeTo - s.TimeFrom)
	return s.CenterFrom.Lerp(s.CenterTo, ratio)
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(s.CenterAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns a box enclosing the sphere at both ends of the time
// interval, which contains it at every instant in between.
func (s *MovingSphere) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	boxFrom := sphereBox(s.CenterAt(timeFrom), s.Radius)
	boxTo := sphereBox(s.CenterAt(timeTo), s.Radius)
	return boxFrom.Merge(boxTo), true
}
