package core

import "math/rand"

// Hittable is implemented by anything a ray can intersect: primitives,
// spatial transforms, volumes and aggregates.
type Hittable interface {
	// Hit returns the closest intersection with ray parameter in
	// (tMin, tMax), or false if there is none.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object across the given
	// time interval. Moving objects enclose all positions they take over
	// the interval. Objects without a well-defined box return false.
	BoundingBox(timeFrom, timeTo float64) (AABB, bool)
}

// Material decides how a ray interacts with a surface
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false if the
	// ray was fully absorbed.
	Scatter(rayIn Ray, hit *HitRecord, rnd *rand.Rand) (ScatterResult, bool)

	// Emit returns the emitted color at a surface point. Non-emissive
	// materials return black.
	Emit(u, v float64, point Vec3) Vec3
}

// Texture provides a spatially-varying color for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and 3D point p.
	// Procedural textures use the point, image textures use (u, v).
	Value(u, v float64, point Vec3) Vec3
}

// ScatterResult contains the outcome of a material scattering event
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Fraction of light color preserved by the event
}

// HitRecord contains information about a ray-object intersection. It is
// created fresh per intersection and never mutated afterwards.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at the point, facing against the ray
	T         float64  // Ray parameter at the intersection
	U, V      float64  // Surface parameterization
	FrontFace bool     // Whether the ray hit the outside of the surface
	Material  Material // Material of the hit object
}

// SetFaceNormal stores the against-ray view of an outward normal. The ray
// hits the front face exactly when it travels against the outward normal.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
