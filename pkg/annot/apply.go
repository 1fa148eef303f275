package annot

import (
	"github.com/matzehuels/annotick/pkg/annot/geometry"
	"github.com/matzehuels/annotick/pkg/annot/grid"
	"github.com/matzehuels/annotick/pkg/chart"
)

// applyShift converts resolved grid bins back to physical positions and
// translates each label there, plus a perpendicular offset proportional to
// its tick's length. Labels on near sides (bottom, left) shift in the
// negative perpendicular direction, away from the plot area.
func applyShift(m *geometry.Model, side chart.Side, positions []int, o options) {
	ax := m.Axis(side)
	labels := m.Labels(side)
	ticks := m.Ticks(side)

	for i, lr := range labels {
		newPos := grid.PhysFor(positions[i], ax.From, ax.To, o.resolution)
		dAlong := newPos - lr.Pos

		dAcross := ticks[i].ExtentAcross * o.perpShift
		if side.Near() {
			dAcross = -dAcross
		}

		var dx, dy float64
		if side.Horizontal() {
			dx, dy = dAlong, dAcross
		} else {
			dx, dy = dAcross, dAlong
		}

		lr.Label.Translate(dx, dy)
		lr.Shifted = lr.Label.PhysBounds()
		lr.HasShifted = true
	}
}

// drawConnectors draws, for every shifted label, a 4-point polyline from the
// label's new position down to its tick's original position, in data
// coordinates so the line stays attached when the chart rescales. The
// original tick mark is hidden once its connector exists, and the chart's
// view limits are restored after each draw so the polyline cannot rescale
// the visible range.
func drawConnectors(c chart.Chart, m *geometry.Model, side chart.Side, o options) {
	labels := m.Labels(side)
	ticks := m.Ticks(side)

	for i, lr := range labels {
		shifted := lr.Label.DataBounds()

		// Perpendicular displacement of the label in data units.
		var perpShift float64
		if side.Horizontal() {
			perpShift = shifted.Bottom - lr.DataBounds.Bottom
		} else {
			perpShift = shifted.Left - lr.DataBounds.Left
		}

		start := ticks[i].DataPosAcross
		perp := [4]float64{
			start + perpShift,
			start + perpShift - perpShift*o.relTickSize/2,
			start + perpShift*o.relTickSize/2,
			start,
		}

		var newPara float64
		if side.Horizontal() {
			newPara = shifted.CenterX()
		} else {
			newPara = shifted.CenterY()
		}
		oldPara := ticks[i].DataPos
		para := [4]float64{newPara, newPara, oldPara, oldPara}

		points := make([]chart.Point, 4)
		for j := range points {
			if side.Horizontal() {
				points[j] = chart.Point{X: para[j], Y: perp[j]}
			} else {
				points[j] = chart.Point{X: perp[j], Y: para[j]}
			}
		}

		limits := c.ViewLimits()
		c.DrawLine(points, ticks[i].StrokeWidth, ticks[i].Color)
		c.SetViewLimits(limits)

		ticks[i].Tick.SetVisible(false)
	}
}
