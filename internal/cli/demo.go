package cli

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tdewolff/canvas"

	"github.com/matzehuels/annotick/pkg/annot"
	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/chart/canvaschart"
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	out        string  // output file path
	side       string  // axis or side to annotate
	labelsStr  string  // comma-separated label subset to keep
	configPath string  // TOML config file
	expand     float64 // symmetric axis expansion fraction
	resolution int     // occupancy grid resolution
	speed      float64 // relocation step size fraction
	highlight  bool    // color the annotated labels and their connectors
}

// demoCommand creates the demo command. It renders a sample chart whose tick
// labels crowd each other, runs the annotation pipeline over them, and
// writes the result to an image file.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{
		out:        "annotick-demo.svg",
		side:       "bottom",
		resolution: annot.DefaultResolution,
		speed:      annot.DefaultSpeed,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sample chart with annotated tick labels",
		Long: `Render a demonstration chart with deliberately crowded tick labels,
resolve their overlaps, and write the annotated result to an image file.
The output format follows the file extension (svg, pdf, png).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output file (svg, pdf, or png)")
	cmd.Flags().StringVar(&opts.side, "side", opts.side, "axis to annotate: xaxis, yaxis, bottom, top, left, right")
	cmd.Flags().StringVar(&opts.labelsStr, "labels", "", "comma-separated label subset to keep (default all)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.Flags().Float64Var(&opts.expand, "expand", 0, "expand the axis by this fraction to make room")
	cmd.Flags().IntVar(&opts.resolution, "resolution", opts.resolution, "occupancy grid resolution")
	cmd.Flags().Float64Var(&opts.speed, "speed", opts.speed, "relocation step size as a fraction of the axis")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", true, "color annotated labels and connectors")

	return cmd
}

func (c *CLI) runDemo(cmd *cobra.Command, opts *demoOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("expand") {
		cfg.Annotate.ExpandAxis = opts.expand
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Annotate.Resolution = opts.resolution
	}
	if cmd.Flags().Changed("speed") {
		cfg.Annotate.Speed = opts.speed
	}

	sides, err := chart.ParseAxis(opts.side)
	if err != nil {
		return err
	}

	ch, err := buildDemoChart(cfg.Chart, sides)
	if err != nil {
		return err
	}

	var labels []string
	if opts.labelsStr != "" {
		labels = strings.Split(opts.labelsStr, ",")
	}

	if opts.highlight {
		accent := color.RGBA{R: 192, G: 0, B: 64, A: 255}
		attrs := map[string]any{"color": accent}
		target := labels
		if target == nil {
			target = demoLabelTexts()
		}
		if err := annot.FormatLabels(ch, opts.side, target, attrs,
			annot.IncludeTicks(), annot.FormatLogger(logger)); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	annOpts := append(cfg.options(), annot.WithLogger(logger))
	if err := annot.Annotate(ch, opts.side, labels, annOpts...); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Annotated %d labels", countVisibleLabels(ch, sides)))

	if err := ch.WriteFile(opts.out, canvas.DPMM(5.0)); err != nil {
		return err
	}

	printSuccess("Demo chart written")
	printFile(opts.out)
	printSummary(countVisibleLabels(ch, sides), len(ch.Lines()))
	return nil
}

// demoTickPositions are three tight clusters on a [0, 100] axis.
func demoTickPositions() []float64 {
	return []float64{
		8, 10, 11, 12, 13,
		42, 43, 44, 46,
		78, 79, 80, 81, 83,
	}
}

func demoLabelTexts() []string {
	positions := demoTickPositions()
	texts := make([]string, len(positions))
	for i, p := range positions {
		texts[i] = fmt.Sprintf("%g", p)
	}
	return texts
}

// buildDemoChart assembles the sample chart: a damped oscillation series
// with clustered tick marks on every requested side.
func buildDemoChart(cfg ChartConfig, sides []chart.Side) (*canvaschart.Chart, error) {
	ch, err := canvaschart.New(canvaschart.Config{
		Width: cfg.Width, Height: cfg.Height, Margin: cfg.Margin,
		XMin: 0, XMax: 100, YMin: 0, YMax: 100,
		FontSize: cfg.FontSize,
	})
	if err != nil {
		return nil, err
	}

	var points []chart.Point
	for x := 0.0; x <= 100; x += 0.5 {
		y := 50 + 40*math.Exp(-x/60)*math.Sin(x/4)
		points = append(points, chart.Point{X: x, Y: y})
	}
	ch.AddSeries(points, 0.4, color.RGBA{R: 46, G: 139, B: 87, A: 255})

	positions := demoTickPositions()
	texts := demoLabelTexts()
	for _, side := range sides {
		if err := ch.AddTicks(side, positions, texts); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

func countVisibleLabels(ch *canvaschart.Chart, sides []chart.Side) int {
	n := 0
	for _, side := range sides {
		for _, l := range ch.Labels(side) {
			if l.Visible() {
				n++
			}
		}
	}
	return n
}
