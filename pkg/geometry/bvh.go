package geometry

import (
	"math"
	"math/rand"
	"sort"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// BVH is a node of a bounding volume hierarchy: a binary tree of bounding
// boxes that prunes ray intersection tests. A ray that misses a node's box
// misses everything beneath it.
//
// Construction splits the object list at the median along a randomly
// chosen axis, which gives balanced trees in O(n log n) expected without a
// single bad axis dominating.
type BVH struct {
	box   core.AABB
	left  core.Hittable
	right core.Hittable // nil for single-object leaves
}

// NewBVH builds a BVH over the objects for the given time range.
//
// It panics if the object list is empty, if any object has no bounding
// box, or if a bounding-box comparison encounters NaN: the accelerator
// cannot be built over objects without a defined spatial extent.
func NewBVH(objects []core.Hittable, timeFrom, timeTo float64, rnd *rand.Rand) *BVH {
	if len(objects) == 0 {
		panic("geometry: cannot build BVH from an empty object list")
	}

	// Copy so sorting never reorders the caller's slice
	sorted := make([]core.Hittable, len(objects))
	copy(sorted, objects)

	return buildBVH(sorted, timeFrom, timeTo, rnd)
}

func buildBVH(objects []core.Hittable, timeFrom, timeTo float64, rnd *rand.Rand) *BVH {
	axis := rnd.Intn(3)

	switch len(objects) {
	case 1:
		return &BVH{
			box:  mustBoundingBox(objects[0], timeFrom, timeTo),
			left: objects[0],
		}
	case 2:
		sortByBoxMin(objects, axis, timeFrom, timeTo)
		left, right := objects[0], objects[1]
		leftBox := mustBoundingBox(left, timeFrom, timeTo)
		rightBox := mustBoundingBox(right, timeFrom, timeTo)
		return &BVH{
			box:   leftBox.Merge(rightBox),
			left:  left,
			right: right,
		}
	default:
		sortByBoxMin(objects, axis, timeFrom, timeTo)
		mid := len(objects) / 2
		left := buildBVH(objects[:mid], timeFrom, timeTo, rnd)
		right := buildBVH(objects[mid:], timeFrom, timeTo, rnd)
		return &BVH{
			box:   left.box.Merge(right.box),
			left:  left,
			right: right,
		}
	}
}

// sortByBoxMin sorts objects by the minimum corner of their bounding box
// along the given axis
func sortByBoxMin(objects []core.Hittable, axis int, timeFrom, timeTo float64) {
	sort.Slice(objects, func(i, j int) bool {
		lhs := mustBoundingBox(objects[i], timeFrom, timeTo).Min.Component(axis)
		rhs := mustBoundingBox(objects[j], timeFrom, timeTo).Min.Component(axis)
		if math.IsNaN(lhs) || math.IsNaN(rhs) {
			panic("geometry: NaN bounding-box coordinate in BVH constructor")
		}
		return lhs < rhs
	})
}

func mustBoundingBox(object core.Hittable, timeFrom, timeTo float64) core.AABB {
	box, ok := object.BoundingBox(timeFrom, timeTo)
	if !ok {
		panic("geometry: object without bounding box in BVH constructor")
	}
	return box
}

// Hit tests the node's box first, then both children, narrowing tMax to
// the left child's hit so most of the right subtree's box tests are pruned.
// The closer of the two hits wins.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !b.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, leftOk := b.left.Hit(ray, tMin, tMax)
	if leftOk {
		tMax = leftHit.T
	}

	if b.right != nil {
		if rightHit, rightOk := b.right.Hit(ray, tMin, tMax); rightOk {
			return rightHit, true
		}
	}

	return leftHit, leftOk
}

// BoundingBox returns the node's box, which already covers the time range
// the tree was built for
func (b *BVH) BoundingBox(timeFrom, timeTo float64) (core.AABB, bool) {
	return b.box, true
}
