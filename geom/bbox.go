// Package geom supplements gosl/gm with the fixed small-dimension bounding
// box the spatial mesh needs; gosl/gm's bounding volumes are built around
// dynamic-length point sets, not the 2-D Vec used throughout this module.
// Grounded on the reference engine's BBox (original TitSolver
// source/tit/geom/bbox.hpp).
package geom

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosph/linalg"
)

// BBox is an axis-aligned bounding box in the 2-D particle space.
type BBox struct {
	low, high linalg.Vec
}

// NewBBox returns a degenerate box containing only point.
func NewBBox(point linalg.Vec) BBox { return BBox{low: point, high: point} }

// NewBBoxFromPoints returns the smallest box containing both p1 and p2.
func NewBBoxFromPoints(p1, p2 linalg.Vec) BBox {
	return BBox{low: minVec(p1, p2), high: maxVec(p1, p2)}
}

// Low returns the box's lower corner.
func (b BBox) Low() linalg.Vec { return b.low }

// High returns the box's upper corner.
func (b BBox) High() linalg.Vec { return b.high }

// Center returns the box's midpoint.
func (b BBox) Center() linalg.Vec { return b.low.Add(b.high).Scale(0.5) }

// Extents returns the box's per-axis side lengths.
func (b BBox) Extents() linalg.Vec { return b.high.Sub(b.low) }

// Clamp returns the point inside the box closest to point.
func (b BBox) Clamp(point linalg.Vec) linalg.Vec {
	return minVec(b.high, maxVec(b.low, point))
}

// Grow extends the box on every side by amount (must be non-negative).
func (b BBox) Grow(amount float64) BBox {
	if amount < 0 {
		chk.Panic("geom: grow amount must be non-negative, got %v", amount)
	}
	d := linalg.Vec{X: amount, Y: amount}
	return BBox{low: b.low.Sub(d), high: b.high.Add(d)}
}

// Shrink contracts the box on every side by amount (must be non-negative).
func (b BBox) Shrink(amount float64) BBox {
	if amount < 0 {
		chk.Panic("geom: shrink amount must be non-negative, got %v", amount)
	}
	d := linalg.Vec{X: amount, Y: amount}
	return BBox{low: b.low.Add(d), high: b.high.Sub(d)}
}

// Expand grows the box, if needed, to include point.
func (b BBox) Expand(point linalg.Vec) BBox {
	return BBox{low: minVec(b.low, point), high: maxVec(b.high, point)}
}

// Intersect returns the overlap of b and other.
func (b BBox) Intersect(other BBox) BBox {
	return BBox{low: maxVec(b.low, other.low), high: minVec(b.high, other.high)}
}

// Join returns the smallest box containing both b and other.
func (b BBox) Join(other BBox) BBox {
	return BBox{low: minVec(b.low, other.low), high: maxVec(b.high, other.high)}
}

// SplitX splits the box into a left and right part at x=val.
func (b BBox) SplitX(val float64) (left, right BBox) {
	if val < b.low.X || val > b.high.X {
		chk.Panic("geom: split value %v out of box bounds [%v,%v]", val, b.low.X, b.high.X)
	}
	left = BBox{low: b.low, high: linalg.Vec{X: val, Y: b.high.Y}}
	right = BBox{low: linalg.Vec{X: val, Y: b.low.Y}, high: b.high}
	return
}

// SplitY splits the box into a lower and upper part at y=val.
func (b BBox) SplitY(val float64) (lower, upper BBox) {
	if val < b.low.Y || val > b.high.Y {
		chk.Panic("geom: split value %v out of box bounds [%v,%v]", val, b.low.Y, b.high.Y)
	}
	lower = BBox{low: b.low, high: linalg.Vec{X: b.high.X, Y: val}}
	upper = BBox{low: linalg.Vec{X: b.low.X, Y: val}, high: b.high}
	return
}

// Contains reports whether point lies within the box (inclusive).
func (b BBox) Contains(point linalg.Vec) bool {
	return point.X >= b.low.X && point.X <= b.high.X &&
		point.Y >= b.low.Y && point.Y <= b.high.Y
}

func minVec(a, b linalg.Vec) linalg.Vec {
	return linalg.Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

func maxVec(a, b linalg.Vec) linalg.Vec {
	return linalg.Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}
