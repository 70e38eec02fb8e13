package mesh

import (
	"sort"

	"github.com/cpmech/gosph/linalg"
)

// partitionInertial assigns each of the given indices into one of numParts
// groups by recursive inertial bisection: at each step, the largest group
// is split in half along its principal axis (the eigenvector of its
// position covariance matrix with the largest eigenvalue), found via
// linalg.Jacobi2. Grounded on geom::RecursiveInertialBisection (original
// TitSolver source/tit/geom/partition.hpp), generalized here to a Go
// divide loop instead of the original's per-level functional composition.
func partitionInertial(positions []linalg.Vec, indices []int, numParts int) []int {
	part := make([]int, len(positions))
	groups := [][]int{append([]int(nil), indices...)}
	for len(groups) < numParts {
		// Split the largest group.
		largest := 0
		for i, g := range groups {
			if len(g) > len(groups[largest]) {
				largest = i
			}
		}
		if len(groups[largest]) < 2 {
			break // cannot split further
		}
		left, right := bisect(positions, groups[largest])
		groups[largest] = left
		groups = append(groups, right)
	}
	for p, g := range groups {
		for _, idx := range g {
			part[idx] = p
		}
	}
	return part
}

// bisect splits group into two halves along its principal axis.
func bisect(positions []linalg.Vec, group []int) (left, right []int) {
	n := float64(len(group))
	var mean linalg.Vec
	for _, idx := range group {
		mean = mean.Add(positions[idx])
	}
	mean = mean.Scale(1 / n)

	var cov linalg.Mat2
	for _, idx := range group {
		d := positions[idx].Sub(mean)
		cov = cov.Add(linalg.Outer(d, d))
	}
	cov = cov.Scale(1 / n)

	axis := linalg.Vec{X: 1, Y: 0}
	if eig, status := linalg.Jacobi2(cov); status == linalg.Ok {
		if eig.D.X >= eig.D.Y {
			axis = eig.V0
		} else {
			axis = eig.V1
		}
	}

	sorted := append([]int(nil), group...)
	sort.Slice(sorted, func(i, j int) bool {
		return positions[sorted[i]].Sub(mean).Dot(axis) < positions[sorted[j]].Sub(mean).Dot(axis)
	})
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

// refineKMeans runs a few Lloyd iterations over the inertial-bisection
// assignment to smooth block boundaries, per spec.md's partitioning step:
// recursive inertial bisection followed by a k-means refinement pass.
func refineKMeans(positions []linalg.Vec, part []int, numParts, iters int) {
	centroids := make([]linalg.Vec, numParts)
	counts := make([]int, numParts)
	for iter := 0; iter < iters; iter++ {
		for i := range centroids {
			centroids[i] = linalg.Vec{}
			counts[i] = 0
		}
		for idx, p := range part {
			centroids[p] = centroids[p].Add(positions[idx])
			counts[p]++
		}
		for i := range centroids {
			if counts[i] > 0 {
				centroids[i] = centroids[i].Scale(1 / float64(counts[i]))
			}
		}
		changed := false
		for idx, pos := range positions {
			best, bestDist := part[idx], pos.Sub(centroids[part[idx]]).NormSq()
			for p, c := range centroids {
				if counts[p] == 0 {
					continue
				}
				if d := pos.Sub(c).NormSq(); d < bestDist {
					best, bestDist = p, d
				}
			}
			if best != part[idx] {
				part[idx] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}
