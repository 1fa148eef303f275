// Package chart defines the capability interface annotick requires from a
// rendering library.
//
// The annotation pipeline never talks to a rendering engine directly. It only
// needs, per axis side, the tick labels and tick marks with their bounding
// boxes in two coordinate spaces (physical units such as millimeters, and the
// chart's data units), a way to translate a label by a physical offset, and a
// primitive to draw a styled polyline in data space. Any chart library for
// which those operations can be implemented can be annotated; see
// chart/canvaschart for an adapter built on github.com/tdewolff/canvas.
//
// Adapters are selected by the caller. There is no runtime introspection of
// chart objects.
package chart

import "image/color"

// Point is a position in the chart's data coordinate space.
type Point struct {
	X, Y float64
}

// ViewLimits is the visible data range of a chart.
type ViewLimits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Label is a tick label entity on a chart.
//
// PhysBounds and DataBounds must reflect any translation applied through
// Translate, so that callers can observe the shifted position in both
// coordinate spaces.
type Label interface {
	// Text returns the label's textual value, used for subset matching.
	Text() string

	// Visible reports whether the label is currently drawn.
	Visible() bool

	// SetVisible toggles whether the label is drawn.
	SetVisible(visible bool)

	// PhysBounds returns the label's bounding box in physical units.
	PhysBounds() Rect

	// DataBounds returns the label's bounding box in data units.
	DataBounds() Rect

	// Translate moves the label by (dx, dy) in physical units.
	Translate(dx, dy float64)

	// SetAttr sets a named visual attribute (e.g. "color", "size").
	// Unsupported attribute names yield an error with code NO_ATTRIBUTE.
	SetAttr(name string, value any) error
}

// Tick is a tick mark entity paired with a Label.
type Tick interface {
	// Visible reports whether the tick mark is currently drawn.
	Visible() bool

	// SetVisible toggles whether the tick mark is drawn.
	SetVisible(visible bool)

	// PhysBounds returns the tick mark's bounding box in physical units.
	PhysBounds() Rect

	// DataBounds returns the tick mark's bounding box in data units.
	DataBounds() Rect

	// StrokeWidth returns the tick's stroke width, replicated on
	// connector lines.
	StrokeWidth() float64

	// Color returns the tick's stroke color, replicated on connector lines.
	Color() color.Color

	// SetAttr sets a named visual attribute. Unsupported attribute names
	// yield an error with code NO_ATTRIBUTE.
	SetAttr(name string, value any) error
}

// Chart is the narrow view of a chart object the annotation pipeline operates
// on. Implementations mutate shared chart state (label positions), so
// concurrent use of one Chart must be serialized by the caller.
type Chart interface {
	// Labels returns the tick labels on a side, in the chart's own order.
	// The returned slice is parallel to Ticks(side).
	Labels(side Side) []Label

	// Ticks returns the tick marks on a side, parallel to Labels(side).
	Ticks(side Side) []Tick

	// AxisRange returns the physical from/to extent of the axis a side
	// belongs to (the x range for bottom/top, the y range for left/right).
	AxisRange(side Side) (from, to float64)

	// DrawLine draws an unclipped polyline through points in data
	// coordinates with the given stroke width (physical units) and color.
	DrawLine(points []Point, strokeWidth float64, col color.Color)

	// ViewLimits returns the current visible data range.
	ViewLimits() ViewLimits

	// SetViewLimits restores the visible data range. Used to undo any
	// rescaling a DrawLine call may have caused.
	SetViewLimits(limits ViewLimits)
}
