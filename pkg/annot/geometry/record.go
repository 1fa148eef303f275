// Package geometry extracts normalized per-side label and tick tables from a
// chart.
//
// The extractor turns the collaborator's raw entities into index-aligned,
// visibility-filtered record lists sorted by position along the axis. These
// tables are the sole input of the occupancy grid; records are rebuilt fresh
// for every layout request and never persisted.
package geometry

import (
	"image/color"

	"github.com/matzehuels/annotick/pkg/chart"
)

// LabelRecord is the normalized view of one visible tick label on a side.
// Positions and extents along the axis are in physical units; the Data*
// fields carry the same measurements in the chart's data space, needed for
// connector lines that stay put when the chart rescales.
type LabelRecord struct {
	Text string

	Pos          float64 // center along the axis
	Extent       float64 // span along the axis
	ExtentAcross float64 // span perpendicular to the axis

	DataPos       float64
	DataExtent    float64
	DataPosAcross float64

	// Bounds is the original physical bounding box; DataBounds the same box
	// in data units. Shifted is filled in once the layout is applied.
	Bounds     chart.Rect
	DataBounds chart.Rect
	Shifted    chart.Rect
	HasShifted bool

	// Label is the backing chart entity.
	Label chart.Label
}

// TickRecord mirrors LabelRecord for the tick mark paired with a label.
type TickRecord struct {
	Pos          float64 // center along the axis
	ExtentAcross float64 // tick length perpendicular to the axis

	DataPos       float64 // center along the axis, data units
	DataPosAcross float64 // center across the axis, data units

	StrokeWidth float64
	Color       color.Color

	// Tick is the backing chart entity.
	Tick chart.Tick
}

// AxisExtent is the physical extent of the axis a side belongs to. It is
// mutable: Extend enlarges it before layout to make room for labels.
type AxisExtent struct {
	From, To float64
}

// Extent returns the current physical span.
func (a *AxisExtent) Extent() float64 { return a.To - a.From }

// Extend enlarges the extent by the given fractions of the current span,
// before the lower end and after the upper end.
func (a *AxisExtent) Extend(before, after float64) {
	span := a.Extent()
	a.From -= span * before
	a.To += span * after
}
