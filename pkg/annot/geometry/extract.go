package geometry

import (
	"sort"

	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

// Model holds the extracted per-side tables for one chart. Label and tick
// lists are always the same length and index-aligned; both are sorted
// ascending by position along the axis with stable ties.
type Model struct {
	chart  chart.Chart
	labels map[chart.Side][]*LabelRecord
	ticks  map[chart.Side][]*TickRecord
	axes   map[chart.Side]*AxisExtent
}

// Extract builds a fresh Model from a chart. Invisible labels and their
// paired ticks are dropped; the remaining records are dense and sorted.
func Extract(c chart.Chart) *Model {
	m := &Model{
		chart:  c,
		labels: map[chart.Side][]*LabelRecord{},
		ticks:  map[chart.Side][]*TickRecord{},
		axes:   map[chart.Side]*AxisExtent{},
	}

	for _, side := range chart.Sides() {
		from, to := c.AxisRange(side)
		m.axes[side] = &AxisExtent{From: from, To: to}
		m.extractSide(side)
	}
	return m
}

func (m *Model) extractSide(side chart.Side) {
	labels := m.chart.Labels(side)
	ticks := m.chart.Ticks(side)

	var lrs []*LabelRecord
	var trs []*TickRecord
	for i, l := range labels {
		if !l.Visible() {
			continue
		}
		lrs = append(lrs, newLabelRecord(side, l))
		trs = append(trs, newTickRecord(side, ticks[i]))
	}

	// Sort by position along the axis; ties keep the chart's order.
	order := make([]int, len(lrs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lrs[order[a]].Pos < lrs[order[b]].Pos
	})

	sortedLabels := make([]*LabelRecord, len(lrs))
	sortedTicks := make([]*TickRecord, len(trs))
	for i, idx := range order {
		sortedLabels[i] = lrs[idx]
		sortedTicks[i] = trs[idx]
	}

	m.labels[side] = sortedLabels
	m.ticks[side] = sortedTicks
}

func newLabelRecord(side chart.Side, l chart.Label) *LabelRecord {
	phys := l.PhysBounds()
	data := l.DataBounds()

	alongLo, alongHi := phys.AlongSpan(side)
	acrossLo, acrossHi := phys.AcrossSpan(side)
	dataLo, dataHi := data.AlongSpan(side)

	return &LabelRecord{
		Text:          l.Text(),
		Pos:           (alongLo + alongHi) / 2,
		Extent:        alongHi - alongLo,
		ExtentAcross:  acrossHi - acrossLo,
		DataPos:       (dataLo + dataHi) / 2,
		DataExtent:    dataHi - dataLo,
		DataPosAcross: data.AcrossCenter(side),
		Bounds:        phys,
		DataBounds:    data,
		Label:         l,
	}
}

func newTickRecord(side chart.Side, t chart.Tick) *TickRecord {
	phys := t.PhysBounds()
	data := t.DataBounds()
	acrossLo, acrossHi := phys.AcrossSpan(side)

	return &TickRecord{
		Pos:           phys.AlongCenter(side),
		ExtentAcross:  acrossHi - acrossLo,
		DataPos:       data.AlongCenter(side),
		DataPosAcross: data.AcrossCenter(side),
		StrokeWidth:   t.StrokeWidth(),
		Color:         t.Color(),
		Tick:          t,
	}
}

// Labels returns the sorted label records for a side.
func (m *Model) Labels(side chart.Side) []*LabelRecord { return m.labels[side] }

// Ticks returns the tick records for a side, index-aligned with Labels.
func (m *Model) Ticks(side chart.Side) []*TickRecord { return m.ticks[side] }

// Axis returns the mutable axis extent for a side.
func (m *Model) Axis(side chart.Side) *AxisExtent { return m.axes[side] }

// CheckLabels verifies the wanted label texts against the visible labels on
// the given sides. The returned slice lists wanted texts with no match on any
// of the sides; when none of the wanted labels match a side that has visible
// labels, the error carries code NO_MATCH. Sides without visible labels are
// skipped.
func (m *Model) CheckLabels(sides []chart.Side, wanted []string) ([]string, error) {
	missing := map[string]bool{}

	for _, side := range sides {
		records := m.labels[side]
		if len(records) == 0 {
			continue
		}

		present := map[string]bool{}
		for _, r := range records {
			present[r.Text] = true
		}

		notFound := 0
		for _, w := range wanted {
			if !present[w] {
				notFound++
				missing[w] = true
			}
		}

		if notFound == len(wanted) && len(wanted) > 0 {
			return nil, errors.New(errors.ErrCodeNoMatch,
				"no match between given labels and %s-axis ticklabels", side)
		}
	}

	var out []string
	for _, w := range wanted {
		if missing[w] {
			out = append(out, w)
		}
	}
	return out, nil
}

// Subset hides every visible label on the given sides whose text is not in
// wanted, together with its paired tick, and drops the hidden records. It
// returns the wanted texts that matched nothing; a side with zero matches
// fails with NO_MATCH before anything is hidden.
func (m *Model) Subset(sides []chart.Side, wanted []string) ([]string, error) {
	missing, err := m.CheckLabels(sides, wanted)
	if err != nil {
		return nil, err
	}

	keep := map[string]bool{}
	for _, w := range wanted {
		keep[w] = true
	}

	for _, side := range sides {
		var labels []*LabelRecord
		var ticks []*TickRecord
		for i, lr := range m.labels[side] {
			if keep[lr.Text] {
				labels = append(labels, lr)
				ticks = append(ticks, m.ticks[side][i])
				continue
			}
			lr.Label.SetVisible(false)
			m.ticks[side][i].Tick.SetVisible(false)
		}
		m.labels[side] = labels
		m.ticks[side] = ticks
	}

	return missing, nil
}

// Extend enlarges the axis extent of the given sides by the before/after
// fractions of the current span. Fractions must be finite and non-negative.
func (m *Model) Extend(sides []chart.Side, before, after float64) error {
	if err := errors.ValidateNonNegative("expand_axis", before); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("expand_axis", after); err != nil {
		return err
	}

	for _, side := range sides {
		m.axes[side].Extend(before, after)
	}
	return nil
}
