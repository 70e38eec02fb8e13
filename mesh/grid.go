package mesh

import (
	"math"

	"github.com/cpmech/gosph/linalg"
)

// cell is a uniform-grid cell coordinate.
type cell struct{ ix, iy int }

// grid is a uniform-grid spatial index over a fixed point set, the
// reference engine's default search backend (original TitSolver
// source/tit/geom/search.hpp GridSearch, as used by ParticleMesh).
type grid struct {
	cellSize  float64
	buckets   map[cell][]int
	positions []linalg.Vec
}

func buildGrid(positions []linalg.Vec, cellSize float64) *grid {
	g := &grid{cellSize: cellSize, buckets: make(map[cell][]int), positions: positions}
	for i, p := range positions {
		c := g.cellOf(p)
		g.buckets[c] = append(g.buckets[c], i)
	}
	return g
}

func (g *grid) cellOf(p linalg.Vec) cell {
	return cell{ix: int(math.Floor(p.X / g.cellSize)), iy: int(math.Floor(p.Y / g.cellSize))}
}

// search appends, into out, the indices of every point within radius of
// point that passes keep (keep may be nil to accept everything). Results
// are not sorted; the caller sorts if order matters.
func (g *grid) search(point linalg.Vec, radius float64, keep func(int) bool, out []int) []int {
	c := g.cellOf(point)
	reach := int(math.Ceil(radius/g.cellSize)) + 1
	r2 := radius * radius
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			bucket, ok := g.buckets[cell{ix: c.ix + dx, iy: c.iy + dy}]
			if !ok {
				continue
			}
			for _, idx := range bucket {
				if keep != nil && !keep(idx) {
					continue
				}
				d := g.positions[idx].Sub(point)
				if d.NormSq() < r2 {
					out = append(out, idx)
				}
			}
		}
	}
	return out
}
