package canvaschart

import (
	"image/color"
	"math"
	"testing"

	"github.com/matzehuels/annotick/pkg/annot"
	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

// fixedMeasure sizes every label to 10x4 mm so tests do not depend on font
// shaping.
func fixedMeasure(string, float64) (float64, float64) { return 10, 4 }

func testChart(t *testing.T) *Chart {
	t.Helper()
	c, err := New(Config{
		Width: 160, Height: 120, Margin: 20,
		XMin: 0, XMax: 10, YMin: 0, YMax: 5,
		Measure: fixedMeasure,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantCode errors.Code
	}{
		{
			name:     "margin consumes plot area",
			cfg:      Config{Width: 100, Height: 100, Margin: 50, XMin: 0, XMax: 1, YMin: 0, YMax: 1},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "inverted x limits",
			cfg:      Config{Width: 100, Height: 100, Margin: 10, XMin: 5, XMax: 5, YMin: 0, YMax: 1},
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "inverted y limits",
			cfg:      Config{Width: 100, Height: 100, Margin: 10, XMin: 0, XMax: 1, YMin: 2, YMax: 1},
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if err == nil {
				t.Fatal("New() expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{XMin: 0, XMax: 1, YMin: 0, YMax: 1, Measure: fixedMeasure})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.cfg.Width != defaultWidth || c.cfg.Height != defaultHeight {
		t.Errorf("size = %gx%g, want %gx%g", c.cfg.Width, c.cfg.Height, defaultWidth, defaultHeight)
	}
	if c.cfg.FontSize != defaultFontSize {
		t.Errorf("FontSize = %g, want %g", c.cfg.FontSize, defaultFontSize)
	}
	if c.cfg.TickColor == nil || c.cfg.LabelColor == nil {
		t.Error("default colors not applied")
	}
}

func TestAddTicksGeometry(t *testing.T) {
	c := testChart(t)
	if err := c.AddTicks(chart.Bottom, []float64{5}, []string{"five"}); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}

	labels := c.Labels(chart.Bottom)
	if len(labels) != 1 {
		t.Fatalf("len(labels) = %d, want 1", len(labels))
	}
	b := labels[0].PhysBounds()

	// x=5 of [0,10] maps to the middle of the 120mm plot span at 20+60.
	if got := b.CenterX(); math.Abs(got-80) > 1e-9 {
		t.Errorf("label CenterX = %g, want 80", got)
	}
	if math.Abs(b.Width()-10) > 1e-9 || math.Abs(b.Height()-4) > 1e-9 {
		t.Errorf("label size = %gx%g, want 10x4", b.Width(), b.Height())
	}
	if b.Top >= 20 {
		t.Errorf("label Top = %g, want below the plot frame at 20", b.Top)
	}

	ticks := c.Ticks(chart.Bottom)
	if len(ticks) != 1 {
		t.Fatalf("len(ticks) = %d, want 1", len(ticks))
	}
	tb := ticks[0].PhysBounds()
	if got := tb.CenterX(); math.Abs(got-80) > 1e-9 {
		t.Errorf("tick CenterX = %g, want 80", got)
	}
	if math.Abs(tb.Top-20) > 1e-9 {
		t.Errorf("tick Top = %g, want 20 (plot frame)", tb.Top)
	}
}

func TestAddTicksSortsAndRejectsMismatch(t *testing.T) {
	c := testChart(t)
	if err := c.AddTicks(chart.Bottom, []float64{7, 2, 4}, []string{"g", "b", "d"}); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}
	labels := c.Labels(chart.Bottom)
	want := []string{"b", "d", "g"}
	for i, w := range want {
		if labels[i].Text() != w {
			t.Errorf("labels[%d].Text() = %q, want %q", i, labels[i].Text(), w)
		}
	}

	err := c.AddTicks(chart.Left, []float64{1, 2}, []string{"only"})
	if errors.GetCode(err) != errors.ErrCodeInvalidValue {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidValue)
	}
}

func TestLeftSideGeometry(t *testing.T) {
	c := testChart(t)
	if err := c.AddTicks(chart.Left, []float64{2.5}, []string{"mid"}); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}
	b := c.Labels(chart.Left)[0].PhysBounds()
	// y=2.5 of [0,5] maps to 20+40 on the 80mm vertical span.
	if got := b.CenterY(); math.Abs(got-60) > 1e-9 {
		t.Errorf("label CenterY = %g, want 60", got)
	}
	if b.Right >= 20 {
		t.Errorf("label Right = %g, want left of the plot frame at 20", b.Right)
	}
}

func TestTranslateAndDataBounds(t *testing.T) {
	c := testChart(t)
	if err := c.AddTicks(chart.Bottom, []float64{5}, []string{"five"}); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}
	l := c.Labels(chart.Bottom)[0]

	// 12mm on the 120mm plot span is one data unit of the [0,10] range.
	before := l.DataBounds()
	l.Translate(12, 0)
	after := l.DataBounds()
	if got := after.CenterX() - before.CenterX(); math.Abs(got-1) > 1e-9 {
		t.Errorf("data shift = %g, want 1", got)
	}
	if math.Abs(after.CenterY()-before.CenterY()) > 1e-9 {
		t.Error("y changed on a pure x translation")
	}
}

func TestLabelSetAttr(t *testing.T) {
	c := testChart(t)
	if err := c.AddTicks(chart.Bottom, []float64{5}, []string{"five"}); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}
	l := c.Labels(chart.Bottom)[0]

	if err := l.SetAttr("color", color.RGBA{R: 255, A: 255}); err != nil {
		t.Errorf("SetAttr(color) error = %v", err)
	}
	if err := l.SetAttr("size", 12.0); err != nil {
		t.Errorf("SetAttr(size) error = %v", err)
	}
	if err := l.SetAttr("size", "big"); errors.GetCode(err) != errors.ErrCodeInvalidValue {
		t.Errorf("SetAttr(size, string) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidValue)
	}
	if err := l.SetAttr("font", "serif"); errors.GetCode(err) != errors.ErrCodeNoAttribute {
		t.Errorf("SetAttr(font) code = %v, want %v", errors.GetCode(err), errors.ErrCodeNoAttribute)
	}

	tick := c.Ticks(chart.Bottom)[0]
	if err := tick.SetAttr("color", color.RGBA{B: 255, A: 255}); err != nil {
		t.Errorf("tick SetAttr(color) error = %v", err)
	}
	if err := tick.SetAttr("size", 2.0); errors.GetCode(err) != errors.ErrCodeNoAttribute {
		t.Errorf("tick SetAttr(size) code = %v, want %v", errors.GetCode(err), errors.ErrCodeNoAttribute)
	}
}

func TestDrawLineRecordsAndViewLimits(t *testing.T) {
	c := testChart(t)
	pts := []chart.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	c.DrawLine(pts, 0.3, color.Black)
	pts[0].X = 99 // caller mutation must not leak into the record

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("len(Lines()) = %d, want 1", len(lines))
	}
	if lines[0].Points[0].X != 1 {
		t.Errorf("recorded point mutated: X = %g, want 1", lines[0].Points[0].X)
	}

	lim := c.ViewLimits()
	if lim.XMax != 10 || lim.YMax != 5 {
		t.Errorf("ViewLimits() = %+v, want XMax=10 YMax=5", lim)
	}
	lim.XMax = 20
	c.SetViewLimits(lim)
	if c.ViewLimits().XMax != 20 {
		t.Error("SetViewLimits did not stick")
	}
}

// The adapter run through the full annotation pipeline: crowded bottom
// labels must end up pairwise disjoint with one connector line each.
func TestAnnotateIntegration(t *testing.T) {
	c := testChart(t)
	positions := []float64{4.8, 4.9, 5.0, 5.1, 5.2}
	texts := []string{"a", "b", "c", "d", "e"}
	if err := c.AddTicks(chart.Bottom, positions, texts); err != nil {
		t.Fatalf("AddTicks() error = %v", err)
	}

	if err := annot.Annotate(c, "bottom", nil); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}

	labels := c.Labels(chart.Bottom)
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			a, b := labels[i].PhysBounds(), labels[j].PhysBounds()
			if a.Left < b.Right && b.Left < a.Right {
				t.Errorf("labels %q and %q overlap after annotation", labels[i].Text(), labels[j].Text())
			}
		}
	}
	if got := len(c.Lines()); got != len(texts) {
		t.Errorf("len(Lines()) = %d, want %d", got, len(texts))
	}
	for _, ti := range c.Ticks(chart.Bottom) {
		if ti.Visible() {
			t.Error("original tick still visible after annotation")
		}
	}
	if lim := c.ViewLimits(); lim != (chart.ViewLimits{XMin: 0, XMax: 10, YMin: 0, YMax: 5}) {
		t.Errorf("view limits changed: %+v", lim)
	}
}
