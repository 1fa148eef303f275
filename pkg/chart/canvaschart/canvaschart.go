// Package canvaschart renders tick-oriented charts through tdewolff/canvas
// and exposes them behind the chart capability interfaces. The model is
// deliberately small: a rectangular plot area, data-space series drawn as
// polylines, and per-side tick marks with text labels that callers can
// measure, move, restyle, and hide before rendering.
package canvaschart

import (
	"image/color"
	"sort"

	"github.com/tdewolff/canvas"

	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

// Measurer reports the physical width and height in millimeters of a label
// string at the given point size. The default measurer shapes the text with
// the chart font; tests substitute a fixed-metric function so they do not
// depend on font files.
type Measurer func(text string, sizePt float64) (w, h float64)

// Config describes the fixed geometry and styling of a chart. Zero values
// fall back to the defaults applied by New.
type Config struct {
	// Width and Height are the full canvas size in millimeters.
	Width  float64
	Height float64

	// Margin is the distance in millimeters between the canvas edge and
	// the plot frame on every side.
	Margin float64

	// XMin, XMax, YMin, YMax are the data-space limits of the plot area.
	XMin, XMax float64
	YMin, YMax float64

	// FontSize is the label point size.
	FontSize float64

	// TickLength and TickWidth are the tick mark geometry in millimeters.
	TickLength float64
	TickWidth  float64

	// FrameWidth is the plot frame stroke width in millimeters.
	FrameWidth float64

	TickColor  color.Color
	LabelColor color.Color

	// Measure overrides label measurement. Leave nil to shape with the
	// embedded Latin Modern face.
	Measure Measurer
}

const (
	defaultWidth      = 160.0
	defaultHeight     = 120.0
	defaultMargin     = 20.0
	defaultFontSize   = 8.0
	defaultTickLength = 1.5
	defaultTickWidth  = 0.3
	defaultFrameWidth = 0.3
)

// Line is a recorded data-space polyline with stroke styling.
type Line struct {
	Points      []chart.Point
	StrokeWidth float64
	Color       color.Color
}

// Chart is a renderable chart backed by tdewolff/canvas. It implements
// chart.Chart; labels and ticks added through AddTicks implement chart.Label
// and chart.Tick.
type Chart struct {
	cfg    Config
	limits chart.ViewLimits

	labels map[chart.Side][]*Label
	ticks  map[chart.Side][]*Tick
	series []Line
	lines  []Line

	measure Measurer
}

// New builds an empty chart with the given configuration, applying defaults
// for any zero-valued geometry field.
func New(cfg Config) (*Chart, error) {
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Margin == 0 {
		cfg.Margin = defaultMargin
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = defaultFontSize
	}
	if cfg.TickLength == 0 {
		cfg.TickLength = defaultTickLength
	}
	if cfg.TickWidth == 0 {
		cfg.TickWidth = defaultTickWidth
	}
	if cfg.FrameWidth == 0 {
		cfg.FrameWidth = defaultFrameWidth
	}
	if cfg.TickColor == nil {
		cfg.TickColor = canvas.Black
	}
	if cfg.LabelColor == nil {
		cfg.LabelColor = canvas.Black
	}

	if err := errors.ValidateFloat("width", cfg.Width, 1, 10000); err != nil {
		return nil, err
	}
	if err := errors.ValidateFloat("height", cfg.Height, 1, 10000); err != nil {
		return nil, err
	}
	if cfg.Margin*2 >= cfg.Width || cfg.Margin*2 >= cfg.Height {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "margin leaves no plot area")
	}
	if cfg.XMax <= cfg.XMin || cfg.YMax <= cfg.YMin {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "axis limits must span a positive range")
	}

	m := cfg.Measure
	if m == nil {
		m = faceMeasurer(cfg.FontSize)
	}

	return &Chart{
		cfg: cfg,
		limits: chart.ViewLimits{
			XMin: cfg.XMin, XMax: cfg.XMax,
			YMin: cfg.YMin, YMax: cfg.YMax,
		},
		labels:  map[chart.Side][]*Label{},
		ticks:   map[chart.Side][]*Tick{},
		measure: m,
	}, nil
}

// plot area in physical (mm) coordinates.
func (c *Chart) plotLeft() float64 { return c.cfg.Margin }

func (c *Chart) plotRight() float64 { return c.cfg.Width - c.cfg.Margin }

func (c *Chart) plotBottom() float64 { return c.cfg.Margin }

func (c *Chart) plotTop() float64 { return c.cfg.Height - c.cfg.Margin }

// physX maps a data-space x coordinate to millimeters on the canvas.
func (c *Chart) physX(x float64) float64 {
	return c.plotLeft() + (x-c.cfg.XMin)/(c.cfg.XMax-c.cfg.XMin)*(c.plotRight()-c.plotLeft())
}

func (c *Chart) physY(y float64) float64 {
	return c.plotBottom() + (y-c.cfg.YMin)/(c.cfg.YMax-c.cfg.YMin)*(c.plotTop()-c.plotBottom())
}

// dataDX converts a physical x displacement to data units.
func (c *Chart) dataDX(dx float64) float64 {
	return dx * (c.cfg.XMax - c.cfg.XMin) / (c.plotRight() - c.plotLeft())
}

func (c *Chart) dataDY(dy float64) float64 {
	return dy * (c.cfg.YMax - c.cfg.YMin) / (c.plotTop() - c.plotBottom())
}

// AddSeries records a data-space polyline drawn inside the plot frame.
func (c *Chart) AddSeries(points []chart.Point, strokeWidth float64, col color.Color) {
	if col == nil {
		col = canvas.Black
	}
	c.series = append(c.series, Line{Points: points, StrokeWidth: strokeWidth, Color: col})
}

// AddTicks places one tick mark and one text label per position on the given
// side. Positions are data-space coordinates along that side's axis; texts
// must have the same length as positions.
func (c *Chart) AddTicks(side chart.Side, positions []float64, texts []string) error {
	if len(positions) != len(texts) {
		return errors.New(errors.ErrCodeInvalidValue, "positions and texts must have equal length")
	}
	for i, pos := range positions {
		c.addTick(side, pos, texts[i])
	}
	sort.SliceStable(c.labels[side], func(i, j int) bool {
		return c.labels[side][i].dataPos < c.labels[side][j].dataPos
	})
	sort.SliceStable(c.ticks[side], func(i, j int) bool {
		return c.ticks[side][i].dataPos < c.ticks[side][j].dataPos
	})
	return nil
}

func (c *Chart) addTick(side chart.Side, pos float64, text string) {
	w, h := c.measure(text, c.cfg.FontSize)

	var labelBounds, tickBounds chart.Rect
	gap := c.cfg.TickLength * 0.5
	switch side {
	case chart.Bottom:
		x := c.physX(pos)
		labelBounds = chart.Rect{
			Left: x - w/2, Right: x + w/2,
			Top: c.plotBottom() - c.cfg.TickLength - gap, Bottom: c.plotBottom() - c.cfg.TickLength - gap - h,
		}
		tickBounds = chart.Rect{
			Left: x - c.cfg.TickWidth/2, Right: x + c.cfg.TickWidth/2,
			Top: c.plotBottom(), Bottom: c.plotBottom() - c.cfg.TickLength,
		}
	case chart.Top:
		x := c.physX(pos)
		labelBounds = chart.Rect{
			Left: x - w/2, Right: x + w/2,
			Bottom: c.plotTop() + c.cfg.TickLength + gap, Top: c.plotTop() + c.cfg.TickLength + gap + h,
		}
		tickBounds = chart.Rect{
			Left: x - c.cfg.TickWidth/2, Right: x + c.cfg.TickWidth/2,
			Bottom: c.plotTop(), Top: c.plotTop() + c.cfg.TickLength,
		}
	case chart.Left:
		y := c.physY(pos)
		labelBounds = chart.Rect{
			Bottom: y - h/2, Top: y + h/2,
			Right: c.plotLeft() - c.cfg.TickLength - gap, Left: c.plotLeft() - c.cfg.TickLength - gap - w,
		}
		tickBounds = chart.Rect{
			Bottom: y - c.cfg.TickWidth/2, Top: y + c.cfg.TickWidth/2,
			Right: c.plotLeft(), Left: c.plotLeft() - c.cfg.TickLength,
		}
	case chart.Right:
		y := c.physY(pos)
		labelBounds = chart.Rect{
			Bottom: y - h/2, Top: y + h/2,
			Left: c.plotRight() + c.cfg.TickLength + gap, Right: c.plotRight() + c.cfg.TickLength + gap + w,
		}
		tickBounds = chart.Rect{
			Bottom: y - c.cfg.TickWidth/2, Top: y + c.cfg.TickWidth/2,
			Left: c.plotRight(), Right: c.plotRight() + c.cfg.TickLength,
		}
	}

	c.labels[side] = append(c.labels[side], &Label{
		chart:   c,
		side:    side,
		text:    text,
		visible: true,
		dataPos: pos,
		size:    c.cfg.FontSize,
		col:     c.cfg.LabelColor,
		bounds:  labelBounds,
	})
	c.ticks[side] = append(c.ticks[side], &Tick{
		chart:   c,
		side:    side,
		visible: true,
		dataPos: pos,
		width:   c.cfg.TickWidth,
		col:     c.cfg.TickColor,
		bounds:  tickBounds,
	})
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

// AxisRange implements chart.Chart. The range is reported in physical
// millimeters so label extents and axis extents share one unit.
func (c *Chart) AxisRange(side chart.Side) (float64, float64) {
	if side.Horizontal() {
		return c.plotLeft(), c.plotRight()
	}
	return c.plotBottom(), c.plotTop()
}

// DrawLine implements chart.Chart. Points are data-space coordinates; the
// polyline is rendered above the frame and is not clipped to the plot area.
func (c *Chart) DrawLine(points []chart.Point, strokeWidth float64, col color.Color) {
	pts := make([]chart.Point, len(points))
	copy(pts, points)
	if col == nil {
		col = canvas.Black
	}
	c.lines = append(c.lines, Line{Points: pts, StrokeWidth: strokeWidth, Color: col})
}

// ViewLimits implements chart.Chart.
func (c *Chart) ViewLimits() chart.ViewLimits { return c.limits }

// SetViewLimits implements chart.Chart.
func (c *Chart) SetViewLimits(l chart.ViewLimits) { c.limits = l }

// Lines returns the annotation polylines recorded through DrawLine.
func (c *Chart) Lines() []Line { return c.lines }

// Label is a tick label positioned outside the plot frame.
type Label struct {
	chart   *Chart
	side    chart.Side
	text    string
	visible bool
	dataPos float64
	size    float64
	col     color.Color
	bounds  chart.Rect
}

func (l *Label) Text() string { return l.text }

func (l *Label) Visible() bool { return l.visible }

func (l *Label) SetVisible(v bool) { l.visible = v }

// PhysBounds implements chart.Label; bounds are canvas millimeters.
func (l *Label) PhysBounds() chart.Rect { return l.bounds }

// DataBounds implements chart.Label; the physical box mapped into data space.
func (l *Label) DataBounds() chart.Rect {
	c := l.chart
	return chart.Rect{
		Left:   c.cfg.XMin + c.dataDX(l.bounds.Left-c.plotLeft()),
		Right:  c.cfg.XMin + c.dataDX(l.bounds.Right-c.plotLeft()),
		Bottom: c.cfg.YMin + c.dataDY(l.bounds.Bottom-c.plotBottom()),
		Top:    c.cfg.YMin + c.dataDY(l.bounds.Top-c.plotBottom()),
	}
}

// Translate implements chart.Label. The displacement is physical millimeters.
func (l *Label) Translate(dx, dy float64) {
	l.bounds = l.bounds.Translate(dx, dy)
}

// SetAttr implements chart.Label. Supported attributes are "color"
// (color.Color) and "size" (float64 points).
func (l *Label) SetAttr(name string, value any) error {
	switch name {
	case "color":
		col, ok := value.(color.Color)
		if !ok {
			return errors.New(errors.ErrCodeInvalidValue, "attribute 'color' requires a color.Color value")
		}
		l.col = col
	case "size":
		size, ok := value.(float64)
		if !ok {
			return errors.New(errors.ErrCodeInvalidValue, "attribute 'size' requires a float64 value")
		}
		if err := errors.ValidateFloat("size", size, 0.1, 1000); err != nil {
			return err
		}
		l.size = size
	default:
		return errors.New(errors.ErrCodeNoAttribute, "label has no attribute %q", name)
	}
	return nil
}

// Tick is a single tick mark on the plot frame.
type Tick struct {
	chart   *Chart
	side    chart.Side
	visible bool
	dataPos float64
	width   float64
	col     color.Color
	bounds  chart.Rect
}

func (t *Tick) Visible() bool { return t.visible }

func (t *Tick) SetVisible(v bool) { t.visible = v }

func (t *Tick) PhysBounds() chart.Rect { return t.bounds }

func (t *Tick) DataBounds() chart.Rect {
	c := t.chart
	return chart.Rect{
		Left:   c.cfg.XMin + c.dataDX(t.bounds.Left-c.plotLeft()),
		Right:  c.cfg.XMin + c.dataDX(t.bounds.Right-c.plotLeft()),
		Bottom: c.cfg.YMin + c.dataDY(t.bounds.Bottom-c.plotBottom()),
		Top:    c.cfg.YMin + c.dataDY(t.bounds.Top-c.plotBottom()),
	}
}

func (t *Tick) StrokeWidth() float64 { return t.width }

func (t *Tick) Color() color.Color { return t.col }

// SetAttr implements chart.Tick. Only "color" is supported.
func (t *Tick) SetAttr(name string, value any) error {
	if name != "color" {
		return errors.New(errors.ErrCodeNoAttribute, "tick has no attribute %q", name)
	}
	col, ok := value.(color.Color)
	if !ok {
		return errors.New(errors.ErrCodeInvalidValue, "attribute 'color' requires a color.Color value")
	}
	t.col = col
	return nil
}
