package geometry

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// World is an ordered collection of hittable objects tested linearly.
// Composite nodes own their children; materials are shared read-only.
type World struct {
	Objects []core.Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...core.Hittable) *World {
	return &World{Objects: objects}
}

// Add appends an object to the world
func (w *World) Add(object core.Hittable) {
	w.Objects = append(w.Objects, object)
}

// Hit returns the minimum-t intersection among all objects, narrowing tMax
// to the best hit found so far. Shapes accept a hit at exactly tMax, so on
// an exact t tie the later object wins; the tie-break is unspecified and no
// scene depends on it.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox merges the boxes of all objects. An empty world, or any
// object without a box, yields no box.
func (w *World) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	if len(w.Objects) == 0 {
		return core.AABB{}, false
	}

	box := core.EmptyAABB()
	for _, object := range w.Objects {
		objectBox, ok := object.BoundingBox(timeFrom, timeTo)
		if !ok {
			return core.AABB{}, false
		}
		box = box.Merge(objectBox)
	}
	return box, true
}
