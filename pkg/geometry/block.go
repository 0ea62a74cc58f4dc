package geometry

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Block is an axis-aligned box built from six rectangles, one per face
type Block struct {
	MinPoint core.Vec3
	MaxPoint core.Vec3
	faces    [6]*Rect
}

// NewBlock creates a block spanning minPoint to maxPoint. A zero-volume
// block is a fatal construction error.
func NewBlock(minPoint, maxPoint core.Vec3, material core.Material) *Block {
	if minPoint.X >= maxPoint.X || minPoint.Y >= maxPoint.Y || minPoint.Z >= maxPoint.Z {
		panic("geometry: block must have positive volume")
	}

	return &Block{
		MinPoint: minPoint,
		MaxPoint: maxPoint,
		faces: [6]*Rect{
			NewXYRect(minPoint.X, maxPoint.X, minPoint.Y, maxPoint.Y, minPoint.Z, material),
			NewXYRect(minPoint.X, maxPoint.X, minPoint.Y, maxPoint.Y, maxPoint.Z, material),
			NewXZRect(minPoint.X, maxPoint.X, minPoint.Z, maxPoint.Z, minPoint.Y, material),
			NewXZRect(minPoint.X, maxPoint.X, minPoint.Z, maxPoint.Z, maxPoint.Y, material),
			NewYZRect(minPoint.Y, maxPoint.Y, minPoint.Z, maxPoint.Z, minPoint.X, material),
			NewYZRect(minPoint.Y, maxPoint.Y, minPoint.Z, maxPoint.Z, maxPoint.X, material),
		},
	}
}

// Hit returns the nearest hit among the six faces
func (b *Block) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the exact box of the block; no padding is needed
// because the block has volume in every axis
func (b *Block) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	return core.NewAABB(b.MinPoint, b.MaxPoint), true
}
