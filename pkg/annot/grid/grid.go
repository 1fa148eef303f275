// Package grid implements the discretized occupancy model used to resolve
// overlapping tick labels.
//
// The axis is divided into a fixed number of integer bins. Every label
// occupies a contiguous run of bins (its footprint), represented as one row
// of an occupancy matrix. Relocation moves labels toward their tick-aligned
// target bins under the hard constraint that footprints must not come to
// overlap more than they already do.
//
// The package is deliberately free of chart and logging concerns; it works on
// integer bins and physical extents only. Conversion between physical
// positions and bins happens through BinFor and PhysFor.
package grid

import "math"

// Element describes one label to be placed on the axis.
type Element struct {
	// Target is the bin the label wants to reach, normally the bin of its
	// associated tick mark.
	Target int

	// Extent is the label's physical footprint along the axis, already
	// inflated by any relative gap factor.
	Extent float64
}

// Grid is the occupancy state for one axis side. It owns its matrix; rows are
// only mutated through accepted relocation shifts.
type Grid struct {
	resolution int
	axisExtent float64

	positions []int // current label positions, index-aligned with rows
	targets   []int
	half      []int // half footprint per label, in bins

	// rows[i][b] is 1 when label i covers bin b. Width is resolution+1 so
	// that a position clamped to bin == resolution still has a column.
	rows [][]uint8
}

// BinFor maps a physical position to an integer bin via linear scaling over
// the axis extent, clamped to [0, resolution].
func BinFor(pos, from, extent float64, resolution int) int {
	bin := int(math.Round((pos - from) / extent * float64(resolution)))
	if bin < 0 {
		bin = 0
	}
	if bin > resolution {
		bin = resolution
	}
	return bin
}

// PhysFor maps a bin back to a physical position by linear interpolation over
// resolution sample points spanning [from, to]. It inverts BinFor up to one
// bin width of error.
func PhysFor(bin int, from, to float64, resolution int) float64 {
	if resolution <= 1 {
		return from
	}
	return from + (to-from)*float64(bin)/float64(resolution-1)
}

// Redistribute returns n positions spread evenly across [0, resolution].
// This is the starting layout for relocation: raw extracted positions may
// already overlap, while an even spread is the most spacious arrangement the
// axis allows.
func Redistribute(n, resolution int) []int {
	if n == 0 {
		return nil
	}
	positions := make([]int, n)
	if n == 1 {
		return positions
	}
	for i := range positions {
		positions[i] = int(math.Round(float64(i) * float64(resolution) / float64(n-1)))
	}
	return positions
}

// New builds the occupancy grid for the given elements. Elements must be
// sorted ascending by their target position; axisExtent must be positive.
// Labels start at evenly redistributed positions, not at their targets.
func New(resolution int, axisExtent float64, elems []Element) *Grid {
	n := len(elems)
	g := &Grid{
		resolution: resolution,
		axisExtent: axisExtent,
		positions:  Redistribute(n, resolution),
		targets:    make([]int, n),
		half:       make([]int, n),
		rows:       make([][]uint8, n),
	}

	for i, e := range elems {
		g.targets[i] = e.Target
		g.half[i] = int(e.Extent / axisExtent / 2 * float64(resolution))
		g.rows[i] = make([]uint8, resolution+1)
		g.fillRow(i)
	}
	return g
}

// fillRow rewrites row i from the label's current position and half extent.
func (g *Grid) fillRow(i int) {
	row := g.rows[i]
	for b := range row {
		row[b] = 0
	}
	start := g.positions[i] - g.half[i]
	end := g.positions[i] + g.half[i]
	if start < 0 {
		start = 0
	}
	if end > g.resolution {
		end = g.resolution
	}
	for b := start; b <= end; b++ {
		row[b] = 1
	}
}

// Len returns the number of labels in the grid.
func (g *Grid) Len() int { return len(g.rows) }

// Positions returns a copy of the current label positions.
func (g *Grid) Positions() []int {
	out := make([]int, len(g.positions))
	copy(out, g.positions)
	return out
}

// OverlapCount returns the number of bins covered by more than one label.
func (g *Grid) OverlapCount() int {
	return g.overlapShifted(-1, 0)
}

// overlapShifted counts bins with occupancy > 1, with row `moved` virtually
// shifted by `shift` bins. Pass moved = -1 for the unmodified matrix. The
// matrix itself is never touched, which keeps candidate evaluation free of
// aliasing with the committed state.
func (g *Grid) overlapShifted(moved, shift int) int {
	count := 0
	for b := 0; b <= g.resolution; b++ {
		sum := 0
		for i, row := range g.rows {
			if i == moved {
				src := b - shift
				if src >= 0 && src <= g.resolution {
					sum += int(row[src])
				}
				continue
			}
			sum += int(row[b])
		}
		if sum > 1 {
			count++
		}
	}
	return count
}

// rollRow shifts row i by shift bins. Bins rolled past either end are
// dropped; vacated bins become free.
func (g *Grid) rollRow(i, shift int) {
	old := g.rows[i]
	rolled := make([]uint8, len(old))
	for b := range rolled {
		src := b - shift
		if src >= 0 && src < len(old) {
			rolled[b] = old[src]
		}
	}
	g.rows[i] = rolled
}

// Occupied returns the total number of occupied bin slots, summed over all
// label footprints (overlapping slots count once per label).
func (g *Grid) Occupied() int {
	total := 0
	for _, row := range g.rows {
		for _, v := range row {
			total += int(v)
		}
	}
	return total
}

// FitCheck reports whether the combined label footprint fits into the axis
// at all, and if not, by which relative fraction the axis would need to be
// extended. Infeasibility is never an error: relocation still produces a
// best-effort layout, the caller just warns.
func (g *Grid) FitCheck() (fits bool, suggestedExpand float64) {
	occupied := g.Occupied()
	if occupied <= g.resolution {
		return true, 0
	}
	return false, float64(occupied)/float64(g.resolution) - 1
}
