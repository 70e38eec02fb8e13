package mesh

import "sync"

// Block is the set of adjacency edges whose two endpoints fall in parts a
// and b (a<=b). Grouping edges this way lets a parallel pair loop run
// blocks concurrently without two goroutines ever touching the same
// particle's accumulators at once: RunBlocksParallel serializes only the
// blocks that share a part. Grounded on Multivector<pair<size_t,size_t>>
// block_edges_ (original TitSolver source/tit/sph/particle_mesh.hpp
// ParticleMesh::partition_).
type Block struct {
	PartA, PartB int
	Edges        []Edge
}

func buildBlocks(edges []Edge, part []int) []Block {
	index := make(map[[2]int]int)
	var blocks []Block
	for _, e := range edges {
		pa, pb := part[e.A], part[e.B]
		if pa > pb {
			pa, pb = pb, pa
		}
		key := [2]int{pa, pb}
		i, ok := index[key]
		if !ok {
			i = len(blocks)
			index[key] = i
			blocks = append(blocks, Block{PartA: pa, PartB: pb})
		}
		blocks[i].Edges = append(blocks[i].Edges, e)
	}
	return blocks
}

// RunBlocksParallel applies work to every block's edge list, running
// blocks whose part pairs are disjoint concurrently and serializing only
// those that share a part (via a per-part mutex, lower index locked
// first to avoid deadlock).
func RunBlocksParallel(blocks []Block, numParts int, work func(edges []Edge)) {
	locks := make([]sync.Mutex, numParts)
	var wg sync.WaitGroup
	wg.Add(len(blocks))
	for _, b := range blocks {
		go func(b Block) {
			defer wg.Done()
			first, second := b.PartA, b.PartB
			if first > second {
				first, second = second, first
			}
			locks[first].Lock()
			if second != first {
				locks[second].Lock()
			}
			work(b.Edges)
			if second != first {
				locks[second].Unlock()
			}
			locks[first].Unlock()
		}(b)
	}
	wg.Wait()
}
