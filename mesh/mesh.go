// Package mesh builds the particle adjacency structures every pair-loop
// operator (density, force, shift) walks: a symmetric neighbor graph over
// all particles, a one-sided interpolation graph from each fixed particle
// to its mirrored fluid neighbors, and a block-partitioned edge list that
// can be walked in parallel without a race. Grounded on the reference
// engine's ParticleMesh (original TitSolver
// source/tit/sph/particle_mesh.hpp).
package mesh

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosph/geom"
	"github.com/cpmech/gosph/linalg"
)

// RadiusScale multiplies the smoothing radius when searching for fixed
// particles' interpolation neighbors, matching the reference engine's
// RADIUS_SCALE constant.
const RadiusScale = 3

// Mesh holds the adjacency structures built by Update.
type Mesh struct {
	adjacency       *adjacency
	interpAdjacency *adjacency // indexed 0..numFixed-1, entries are global indices
	blocks          []Block
	numParts        int
	fixedLo         int
}

// NewMesh creates an empty mesh; call Update before using it.
func NewMesh() *Mesh { return &Mesh{} }

// Update rebuilds every adjacency structure from the current particle
// positions. fluidLo/fluidHi and fixedLo/fixedHi give the contiguous index
// ranges of each particle type (see particle.Store.Fluid/Fixed); domain is
// the simulation's fixed bounding box, used to mirror fixed particles'
// search points across the boundary; radius is the (uniform) smoothing
// radius; numParts is the number of spatial parts the particles are
// partitioned into, and the edge list is grouped into blocks by the pair of
// parts of each edge's endpoints, for RunBlocksParallel.
func (m *Mesh) Update(positions []linalg.Vec, fluidLo, fluidHi, fixedLo, fixedHi int,
	domain geom.BBox, radius float64, numParts int) {
	if radius <= 0 {
		chk.Panic("mesh: search radius must be positive, got %v", radius)
	}
	g := buildGrid(positions, radius)

	adj := newAdjacency(len(positions))
	for a, p := range positions {
		adj.set(a, g.search(p, radius, nil, nil))
	}
	m.adjacency = adj

	numFixed := fixedHi - fixedLo
	interp := newAdjacency(numFixed)
	isFluid := func(idx int) bool { return idx >= fluidLo && idx < fluidHi }
	for i := 0; i < numFixed; i++ {
		a := fixedLo + i
		searchPoint := positions[a]
		searchRadius := RadiusScale * radius
		pointOnBoundary := domain.Clamp(searchPoint)
		interpPoint := pointOnBoundary.Scale(2).Sub(searchPoint)
		interp.set(i, g.search(interpPoint, searchRadius, isFluid, nil))
	}
	m.interpAdjacency = interp
	m.fixedLo = fixedLo

	m.partition(positions, numParts)
}

func (m *Mesh) partition(positions []linalg.Vec, numParts int) {
	if numParts < 1 {
		numParts = 1
	}
	indices := make([]int, len(positions))
	for i := range indices {
		indices[i] = i
	}
	part := partitionInertial(positions, indices, numParts)
	refineKMeans(positions, part, numParts, 4)
	m.numParts = numParts
	m.blocks = buildBlocks(m.adjacency.Edges(), part)
}

// Of returns the neighbor indices of particle a (including a itself).
func (m *Mesh) Of(a int) []int { return m.adjacency.Of(a) }

// FixedInterp returns the fluid-particle indices used to interpolate
// boundary values for fixed particle a (a fixed particle's global index,
// not its offset within the fixed range).
func (m *Mesh) FixedInterp(a int) []int { return m.interpAdjacency.Of(a - m.fixedLo) }

// Pairs returns every unique adjacent particle pair.
func (m *Mesh) Pairs() []Edge { return m.adjacency.Edges() }

// Blocks returns the block-partitioned edge list built by the last Update.
func (m *Mesh) Blocks() []Block { return m.blocks }

// NumParts returns the number of spatial partitions blocks were built over.
func (m *Mesh) NumParts() int { return m.numParts }
