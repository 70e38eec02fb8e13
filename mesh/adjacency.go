package mesh

import "sort"

// Edge is an unordered pair of adjacent particle indices, A < B.
type Edge struct{ A, B int }

// adjacency is a symmetric, self-inclusive neighbor list: every particle's
// own index appears in its own neighbor list (the reference engine's
// GridSearch always returns the query point itself), and b is a neighbor
// of a iff a is a neighbor of b, since every particle searches with the
// same smoothing radius. Grounded on graph::Graph as used by ParticleMesh
// (original TitSolver source/tit/sph/particle_mesh.hpp).
type adjacency struct {
	neighbors [][]int
}

func newAdjacency(n int) *adjacency {
	return &adjacency{neighbors: make([][]int, n)}
}

func (g *adjacency) set(a int, neighbors []int) {
	sort.Ints(neighbors)
	g.neighbors[a] = neighbors
}

// Of returns the neighbor indices of particle a, including a itself.
func (g *adjacency) Of(a int) []int { return g.neighbors[a] }

// Edges returns each unordered adjacent pair exactly once.
func (g *adjacency) Edges() []Edge {
	var edges []Edge
	for a, neighbors := range g.neighbors {
		for _, b := range neighbors {
			if b > a {
				edges = append(edges, Edge{A: a, B: b})
			}
		}
	}
	return edges
}
