// Package charttest provides an in-memory chart.Chart implementation for
// tests. Geometry is fully synthetic: callers place labels and ticks at
// explicit physical positions, and data coordinates are derived through a
// fixed linear mapping so that translation behaves like a real chart.
package charttest

import (
	"image/color"

	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

// Label is a fake tick label. Data bounds follow physical bounds through the
// owning chart's linear physical-to-data mapping.
type Label struct {
	text    string
	visible bool
	phys    chart.Rect
	c       *Chart

	// Applied records SetAttr calls for assertions.
	Applied map[string]any
	// Supported lists attribute names SetAttr accepts. Nil means
	// {"color", "size"}.
	Supported []string
}

// Text implements chart.Label.
func (l *Label) Text() string { return l.text }

// Visible implements chart.Label.
func (l *Label) Visible() bool { return l.visible }

// SetVisible implements chart.Label.
func (l *Label) SetVisible(v bool) { l.visible = v }

// PhysBounds implements chart.Label.
func (l *Label) PhysBounds() chart.Rect { return l.phys }

// DataBounds implements chart.Label.
func (l *Label) DataBounds() chart.Rect { return l.c.toData(l.phys) }

// Translate implements chart.Label.
func (l *Label) Translate(dx, dy float64) { l.phys = l.phys.Translate(dx, dy) }

// SetAttr implements chart.Label.
func (l *Label) SetAttr(name string, value any) error {
	supported := l.Supported
	if supported == nil {
		supported = []string{"color", "size"}
	}
	for _, s := range supported {
		if s == name {
			if l.Applied == nil {
				l.Applied = map[string]any{}
			}
			l.Applied[name] = value
			return nil
		}
	}
	return errors.New(errors.ErrCodeNoAttribute, "label has no attribute %q", name)
}

// Tick is a fake tick mark.
type Tick struct {
	visible bool
	phys    chart.Rect
	width   float64
	col     color.Color
	c       *Chart

	Applied   map[string]any
	Supported []string
}

// Visible implements chart.Tick.
func (t *Tick) Visible() bool { return t.visible }

// SetVisible implements chart.Tick.
func (t *Tick) SetVisible(v bool) { t.visible = v }

// PhysBounds implements chart.Tick.
func (t *Tick) PhysBounds() chart.Rect { return t.phys }

// DataBounds implements chart.Tick.
func (t *Tick) DataBounds() chart.Rect { return t.c.toData(t.phys) }

// StrokeWidth implements chart.Tick.
func (t *Tick) StrokeWidth() float64 { return t.width }

// Color implements chart.Tick.
func (t *Tick) Color() color.Color { return t.col }

// SetAttr implements chart.Tick.
func (t *Tick) SetAttr(name string, value any) error {
	supported := t.Supported
	if supported == nil {
		supported = []string{"color"}
	}
	for _, s := range supported {
		if s == name {
			if t.Applied == nil {
				t.Applied = map[string]any{}
			}
			t.Applied[name] = value
			return nil
		}
	}
	return errors.New(errors.ErrCodeNoAttribute, "tick has no attribute %q", name)
}

// Line is one recorded DrawLine call.
type Line struct {
	Points []chart.Point
	Width  float64
	Color  color.Color
}

// Chart is a fake chart.Chart. The zero value is not usable; construct with
// New.
type Chart struct {
	labels map[chart.Side][]*Label
	ticks  map[chart.Side][]*Tick

	// XFrom/XTo and YFrom/YTo are the physical axis ranges.
	XFrom, XTo float64
	YFrom, YTo float64

	// ScaleX/ScaleY convert physical units to data units.
	ScaleX, ScaleY float64

	limits chart.ViewLimits

	// Lines records every DrawLine call in order.
	Lines []Line
	// LimitCalls counts SetViewLimits calls.
	LimitCalls int
}

// New returns a fake chart with physical x range [0, width] and y range
// [0, height], an identity data mapping and view limits matching the ranges.
func New(width, height float64) *Chart {
	return &Chart{
		labels: map[chart.Side][]*Label{},
		ticks:  map[chart.Side][]*Tick{},
		XTo:    width,
		YTo:    height,
		ScaleX: 1,
		ScaleY: 1,
		limits: chart.ViewLimits{XMax: width, YMax: height},
	}
}

func (c *Chart) toData(r chart.Rect) chart.Rect {
	return chart.Rect{
		Left:   r.Left * c.ScaleX,
		Right:  r.Right * c.ScaleX,
		Bottom: r.Bottom * c.ScaleY,
		Top:    r.Top * c.ScaleY,
	}
}

// AddLabel places a label and its paired tick on a side. pos and extent are
// the center and span of the label along the axis direction, in physical
// units; across is the label's perpendicular size. The tick mark is a short
// stub centered on pos with the given length across the axis.
func (c *Chart) AddLabel(side chart.Side, text string, pos, extent, across float64, visible bool) *Label {
	const tickLen = 0.05

	var labelRect, tickRect chart.Rect
	if side.Horizontal() {
		labelRect = chart.Rect{Left: pos - extent/2, Right: pos + extent/2, Bottom: -across, Top: 0}
		tickRect = chart.Rect{Left: pos, Right: pos, Bottom: -tickLen, Top: 0}
	} else {
		labelRect = chart.Rect{Bottom: pos - extent/2, Top: pos + extent/2, Left: -across, Right: 0}
		tickRect = chart.Rect{Bottom: pos, Top: pos, Left: -tickLen, Right: 0}
	}

	l := &Label{text: text, visible: visible, phys: labelRect, c: c}
	t := &Tick{visible: true, phys: tickRect, width: 0.3, col: color.Black, c: c}
	c.labels[side] = append(c.labels[side], l)
	c.ticks[side] = append(c.ticks[side], t)
	return l
}

// Labels implements chart.Chart.
func (c *Chart) Labels(side chart.Side) []chart.Label {
	out := make([]chart.Label, len(c.labels[side]))
	for i, l := range c.labels[side] {
		out[i] = l
	}
	return out
}

// Ticks implements chart.Chart.
func (c *Chart) Ticks(side chart.Side) []chart.Tick {
	out := make([]chart.Tick, len(c.ticks[side]))
	for i, t := range c.ticks[side] {
		out[i] = t
	}
	return out
}

// RawTicks returns the concrete fake ticks on a side for assertions.
func (c *Chart) RawTicks(side chart.Side) []*Tick { return c.ticks[side] }

// RawLabels returns the concrete fake labels on a side for assertions.
func (c *Chart) RawLabels(side chart.Side) []*Label { return c.labels[side] }

// AxisRange implements chart.Chart.
func (c *Chart) AxisRange(side chart.Side) (float64, float64) {
	if side.Horizontal() {
		return c.XFrom, c.XTo
	}
	return c.YFrom, c.YTo
}

// DrawLine implements chart.Chart.
func (c *Chart) DrawLine(points []chart.Point, strokeWidth float64, col color.Color) {
	pts := make([]chart.Point, len(points))
	copy(pts, points)
	c.Lines = append(c.Lines, Line{Points: pts, Width: strokeWidth, Color: col})
}

// ViewLimits implements chart.Chart.
func (c *Chart) ViewLimits() chart.ViewLimits { return c.limits }

// SetViewLimits implements chart.Chart.
func (c *Chart) SetViewLimits(limits chart.ViewLimits) {
	c.limits = limits
	c.LimitCalls++
}
