package grid

import "sort"

// Result summarizes one relocation run.
type Result struct {
	// Positions are the final label positions, clamped to [0, resolution-1].
	Positions []int

	// Rounds is the number of relocation rounds until convergence.
	Rounds int

	// Overlap is the number of bins still covered by more than one label
	// after relocation. Non-zero when the labels cannot all fit.
	Overlap int
}

// Relocate moves every label as close as possible to its target bin without
// creating new footprint overlaps. speed bounds how far an interior label may
// travel per round, as a fraction of the resolution.
//
// Each round processes labels in ascending order of their signed distance to
// target. A label at either end of the order moves its full remaining
// distance; interior labels are additionally bounded by the zero-occupancy
// gap to the neighbor they move toward. A candidate shift is committed only
// when it does not increase the number of multiply-occupied bins. The loop
// converges when a full round passes with no label moving; every accepted
// shift strictly reduces a label's distance to target, so the number of
// rounds is bounded by resolution times the label count.
func (g *Grid) Relocate(speed float64) Result {
	n := len(g.positions)
	if n == 0 {
		return Result{Positions: []int{}}
	}

	step := int(float64(g.resolution) * speed)
	if step < 1 {
		step = 1
	}

	rounds := 0
	for {
		rounds++
		failed := 0

		// Snapshot the ordering for this round; positions move underneath it.
		diffs := make([]int, n)
		for i := range diffs {
			diffs[i] = g.positions[i] - g.targets[i]
		}
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return diffs[order[a]] < diffs[order[b]]
		})

		for _, i := range order {
			shift := g.proposeShift(i, step)
			if shift == 0 {
				failed++
				continue
			}

			before := g.OverlapCount()
			after := g.overlapShifted(i, shift)
			if after > before {
				failed++
				continue
			}

			g.rollRow(i, shift)
			g.positions[i] += shift
		}

		if failed == n {
			break
		}
	}

	final := g.Positions()
	for i, p := range final {
		if p < 0 {
			final[i] = 0
		}
		if p > g.resolution-1 {
			final[i] = g.resolution - 1
		}
	}
	copy(g.positions, final)

	return Result{Positions: final, Rounds: rounds, Overlap: g.OverlapCount()}
}

// proposeShift computes the signed shift label i should attempt this round.
// Zero means the label cannot (or need not) move.
func (g *Grid) proposeShift(i, step int) int {
	diff := g.positions[i] - g.targets[i]

	switch {
	case diff > 0: // needs to move left
		if i == 0 {
			// No left neighbor; the full remaining distance is free.
			return -diff
		}
		possible := g.freeGap(i, i-1)
		return -bound(possible, diff, step)

	case diff < 0: // needs to move right
		if i == len(g.positions)-1 {
			return -diff
		}
		possible := g.freeGap(i, i+1)
		return bound(possible, -diff, step)
	}
	return 0
}

// freeGap counts the zero-occupancy bins between label i and its neighbor,
// considering only the two labels' own rows. The count is taken over the
// half-open bin range from the lower of the two positions to the higher.
func (g *Grid) freeGap(i, neighbor int) int {
	lo, hi := g.positions[neighbor], g.positions[i]
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > g.resolution {
		hi = g.resolution
	}

	free := 0
	for b := lo; b < hi; b++ {
		if g.rows[i][b]+g.rows[neighbor][b] == 0 {
			free++
		}
	}
	return free
}

// bound returns the smallest of the three non-negative limits.
func bound(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
