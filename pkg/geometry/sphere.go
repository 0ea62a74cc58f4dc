package geometry

import (
	"math"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. A negative radius gives a sphere with the
// same surface but inward-facing normals, used for hollow glass shells.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
//
// The sphere equation |P - C|² = r² with P = origin + t*direction expands
// to a quadratic in t. Using half of b avoids a factor of 2 in both the
// discriminant and the roots, which sidesteps catastrophic cancellation.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// sphereBox builds the box of a sphere, ordering the corners componentwise
// so negative radii yield a valid box
func sphereBox(center core.Vec3, radius float64) core.AABB {
	offset := core.NewVec3(radius, radius, radius)
	return core.EmptyAABB().
		Include(center.Subtract(offset)).
		Include(center.Add(offset))
}

// sphereHit solves the ray/sphere quadratic for an arbitrary center so that
// Sphere and MovingSphere share one implementation.
func sphereHit(center core.Vec3, radius float64, mat core.Material, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Of the two roots, take the smallest one inside [tMin, tMax]
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV derives surface coordinates from the spherical angles of the
// outward normal: u from the azimuth, v from the polar angle.
func sphereUV(outwardNormal core.Vec3) (u, v float64) {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	u = phi / (2 * math.Pi)
	v = theta / math.Pi
	return u, v
}
