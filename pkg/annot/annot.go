// Package annot shifts overlapping tick labels along a chart axis until they
// no longer collide and draws connector lines from each label's original tick
// to its new position.
//
// The pipeline behind Annotate runs in three stages per axis side:
//
//  1. extraction: the chart's labels and ticks are normalized into sorted,
//     visibility-filtered tables (pkg/annot/geometry);
//  2. relocation: label footprints are placed on a discretized occupancy
//     grid and moved toward their tick targets without overlapping
//     (pkg/annot/grid);
//  3. application: resolved grid positions are converted back to physical
//     offsets, labels are translated, and connector polylines are drawn.
//
// The chart itself is reached through the chart.Chart capability interface;
// see chart/canvaschart for an adapter. Annotate mutates the supplied chart's
// label positions, so concurrent calls on one chart must be serialized by the
// caller.
package annot

import (
	"github.com/matzehuels/annotick/pkg/annot/geometry"
	"github.com/matzehuels/annotick/pkg/annot/grid"
	"github.com/matzehuels/annotick/pkg/chart"
)

// Annotate keeps only the given labels on the named axis, resolves their
// overlaps and draws connector lines from the original tick positions to the
// shifted labels.
//
// axis is one of "xaxis", "yaxis", "bottom", "top", "left", "right". labels
// is the subset of tick label texts to keep; nil or empty keeps every
// visible label. All side effects are limited to the supplied chart.
//
// Zero matching labels on a side is a NO_MATCH error; a partial match is a
// logged warning and the matched subset is processed. When the labels cannot
// all fit even after relocation, a warning names the expand fraction that
// would make them fit and a best-effort layout is still produced.
func Annotate(c chart.Chart, axis string, labels []string, opts ...Option) error {
	o := newOptions(opts...)
	if err := o.validate(); err != nil {
		return err
	}

	sides, err := chart.ParseAxis(axis)
	if err != nil {
		return err
	}

	m := geometry.Extract(c)

	if len(labels) > 0 {
		missing, err := m.Subset(sides, labels)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			o.logger.Warnf("%d label(s) were not found among the %s ticklabels: %v",
				len(missing), axis, missing)
		}
	}

	if err := m.Extend(sides, o.expandBefore, o.expandAfter); err != nil {
		return err
	}

	for _, side := range sides {
		annotateSide(c, m, side, o)
	}
	return nil
}

// annotateSide runs relocation and application for one side. Sides without
// labels, or with a degenerate axis extent, are skipped.
func annotateSide(c chart.Chart, m *geometry.Model, side chart.Side, o options) {
	labels := m.Labels(side)
	if len(labels) == 0 {
		return
	}

	ax := m.Axis(side)
	if ax.Extent() <= 0 {
		o.logger.Warnf("axis side %s has non-positive extent, skipping layout", side)
		return
	}

	elems := make([]grid.Element, len(labels))
	for i, lr := range labels {
		elems[i] = grid.Element{
			Target: grid.BinFor(lr.Pos, ax.From, ax.Extent(), o.resolution),
			Extent: lr.Extent * o.relLabelSize,
		}
	}

	g := grid.New(o.resolution, ax.Extent(), elems)
	if fits, suggested := g.FitCheck(); !fits {
		o.logger.Warnf("labels on %s cannot be fit into the axis without overlap", side)
		o.logger.Warnf("set expand_axis to at least %.2f to fit all labels", suggested)
	}

	result := g.Relocate(o.speed)
	o.logger.Debugf("relocated %d label(s) on %s in %d round(s), residual overlap %d",
		len(labels), side, result.Rounds, result.Overlap)

	applyShift(m, side, result.Positions, o)
	drawConnectors(c, m, side, o)
}
