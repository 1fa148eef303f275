package canvaschart

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

// family returns the shared Latin Modern font family, loading the embedded
// face on first use.
func family() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		f := canvas.NewFontFamily("latin-modern")
		if err := f.LoadFont(lmroman10regular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = errors.Wrap(errors.ErrCodeInternal, err, "failed to load embedded font")
			return
		}
		fontFamily = f
	})
	return fontFamily, fontErr
}

// faceMeasurer measures label text by shaping it with the embedded face.
// Measurement failures degrade to a rough per-rune estimate rather than
// erroring, matching how missing glyphs render.
func faceMeasurer(defaultSize float64) Measurer {
	return func(text string, sizePt float64) (float64, float64) {
		if sizePt <= 0 {
			sizePt = defaultSize
		}
		f, err := family()
		if err != nil {
			const mmPerPt = 25.4 / 72.0
			w := float64(len([]rune(text))) * sizePt * 0.5 * mmPerPt
			return w, sizePt * mmPerPt
		}
		face := f.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
		line := canvas.NewTextLine(face, text, canvas.Left)
		b := line.Bounds()
		return b.W(), b.H()
	}
}

// Render draws the chart onto a canvas context: white background, plot
// frame, data series, tick marks, labels at their current positions, and
// any annotation polylines recorded through DrawLine.
func (c *Chart) Render(ctx *canvas.Context) error {
	f, err := family()
	if err != nil {
		return err
	}

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(c.cfg.Width, c.cfg.Height))

	frame := canvas.Rectangle(c.plotRight()-c.plotLeft(), c.plotTop()-c.plotBottom())
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(c.cfg.FrameWidth)
	ctx.DrawPath(c.plotLeft(), c.plotBottom(), frame)

	for _, s := range c.series {
		c.strokeDataLine(ctx, s)
	}

	for _, side := range chart.Sides() {
		for _, t := range c.ticks[side] {
			if !t.visible {
				continue
			}
			c.strokeTick(ctx, t)
		}
	}

	ctx.SetStrokeColor(canvas.Transparent)
	for _, side := range chart.Sides() {
		for _, l := range c.labels[side] {
			if !l.visible {
				continue
			}
			face := f.Face(l.size, l.col, canvas.FontRegular, canvas.FontNormal)
			line := canvas.NewTextLine(face, l.text, canvas.Center)
			ctx.SetFillColor(l.col)
			ctx.DrawText(l.bounds.CenterX(), l.bounds.Top, line)
		}
	}

	for _, ln := range c.lines {
		c.strokeDataLine(ctx, ln)
	}
	return nil
}

// strokeDataLine strokes a data-space polyline in physical coordinates.
func (c *Chart) strokeDataLine(ctx *canvas.Context, ln Line) {
	if len(ln.Points) < 2 {
		return
	}
	pl := &canvas.Polyline{}
	for _, p := range ln.Points {
		pl.Add(c.physX(p.X), c.physY(p.Y))
	}
	ctx.SetFillColor(ln.Color)
	ctx.DrawPath(0, 0, pl.ToPath().Stroke(ln.StrokeWidth, canvas.RoundCap, canvas.RoundJoin, 0.01))
}

func (c *Chart) strokeTick(ctx *canvas.Context, t *Tick) {
	pl := &canvas.Polyline{}
	if t.side.Horizontal() {
		x := t.bounds.CenterX()
		pl.Add(x, t.bounds.Bottom)
		pl.Add(x, t.bounds.Top)
	} else {
		y := t.bounds.CenterY()
		pl.Add(t.bounds.Left, y)
		pl.Add(t.bounds.Right, y)
	}
	ctx.SetFillColor(t.col)
	ctx.DrawPath(0, 0, pl.ToPath().Stroke(t.width, canvas.ButtCap, canvas.MiterJoin, 0.01))
}

// WriteFile renders the chart and writes it to filename. The output format
// follows the file extension (svg, png, pdf and the other formats the
// renderers package supports).
func (c *Chart) WriteFile(filename string, resolution canvas.Resolution) error {
	cv := canvas.New(c.cfg.Width, c.cfg.Height)
	ctx := canvas.NewContext(cv)
	if err := c.Render(ctx); err != nil {
		return err
	}
	if err := renderers.Write(filename, cv, resolution); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write chart output")
	}
	return nil
}
