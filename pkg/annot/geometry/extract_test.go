package geometry

import (
	"testing"

	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/chart/charttest"
	"github.com/matzehuels/annotick/pkg/errors"
)

func crowdedChart() *charttest.Chart {
	c := charttest.New(10, 8)
	// Deliberately out of order; extraction must sort by position.
	c.AddLabel(chart.Bottom, "C", 6.0, 1.0, 0.4, true)
	c.AddLabel(chart.Bottom, "A", 2.0, 1.0, 0.4, true)
	c.AddLabel(chart.Bottom, "hidden", 4.0, 1.0, 0.4, false)
	c.AddLabel(chart.Bottom, "B", 3.0, 1.0, 0.4, true)
	return c
}

func TestExtractSortsAndFilters(t *testing.T) {
	m := Extract(crowdedChart())

	labels := m.Labels(chart.Bottom)
	ticks := m.Ticks(chart.Bottom)

	if len(labels) != 3 || len(ticks) != 3 {
		t.Fatalf("got %d labels, %d ticks, want 3 each", len(labels), len(ticks))
	}

	wantOrder := []string{"A", "B", "C"}
	wantPos := []float64{2, 3, 6}
	for i, lr := range labels {
		if lr.Text != wantOrder[i] {
			t.Errorf("label %d text = %q, want %q", i, lr.Text, wantOrder[i])
		}
		if lr.Pos != wantPos[i] {
			t.Errorf("label %d pos = %v, want %v", i, lr.Pos, wantPos[i])
		}
		if lr.Extent != 1.0 {
			t.Errorf("label %d extent = %v, want 1.0", i, lr.Extent)
		}
		if ticks[i].Pos != wantPos[i] {
			t.Errorf("tick %d pos = %v, want %v", i, ticks[i].Pos, wantPos[i])
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	c := crowdedChart()
	first := Extract(c).Labels(chart.Bottom)
	second := Extract(c).Labels(chart.Bottom)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text || first[i].Pos != second[i].Pos ||
			first[i].Extent != second[i].Extent {
			t.Errorf("record %d differs between extractions: %+v vs %+v",
				i, first[i], second[i])
		}
	}
}

func TestExtractAxisExtent(t *testing.T) {
	m := Extract(crowdedChart())

	ax := m.Axis(chart.Bottom)
	if ax.From != 0 || ax.To != 10 {
		t.Errorf("bottom axis = [%v, %v], want [0, 10]", ax.From, ax.To)
	}
	if got := m.Axis(chart.Left).Extent(); got != 8 {
		t.Errorf("left axis extent = %v, want 8", got)
	}
}

func TestExtendAxis(t *testing.T) {
	m := Extract(crowdedChart())

	// 0.05 before and after on extent 10 adds half a unit on each end.
	if err := m.Extend([]chart.Side{chart.Bottom}, 0.05, 0.05); err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	ax := m.Axis(chart.Bottom)
	if ax.From != -0.5 || ax.To != 10.5 {
		t.Errorf("extended axis = [%v, %v], want [-0.5, 10.5]", ax.From, ax.To)
	}
	if ax.Extent() != 11 {
		t.Errorf("extent = %v, want 11", ax.Extent())
	}
}

func TestExtendAxisRejectsNegative(t *testing.T) {
	m := Extract(crowdedChart())
	err := m.Extend([]chart.Side{chart.Bottom}, -0.1, 0)
	if !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidValue)
	}
}

func TestSubsetHidesUnwanted(t *testing.T) {
	c := crowdedChart()
	m := Extract(c)

	missing, err := m.Subset([]chart.Side{chart.Bottom}, []string{"A", "C"})
	if err != nil {
		t.Fatalf("Subset() error = %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}

	labels := m.Labels(chart.Bottom)
	if len(labels) != 2 {
		t.Fatalf("got %d labels after subset, want 2", len(labels))
	}
	if labels[0].Text != "A" || labels[1].Text != "C" {
		t.Errorf("kept labels = %q, %q, want A, C", labels[0].Text, labels[1].Text)
	}
	if len(m.Ticks(chart.Bottom)) != 2 {
		t.Errorf("ticks not trimmed alongside labels")
	}

	// The hidden entity itself must be toggled invisible on the chart.
	hiddenCount := 0
	for _, l := range c.RawLabels(chart.Bottom) {
		if !l.Visible() {
			hiddenCount++
		}
	}
	// "hidden" was already invisible; "B" is newly hidden.
	if hiddenCount != 2 {
		t.Errorf("%d invisible labels on chart, want 2", hiddenCount)
	}
}

func TestSubsetPartialMatchReportsMissing(t *testing.T) {
	m := Extract(crowdedChart())

	missing, err := m.Subset([]chart.Side{chart.Bottom}, []string{"A", "Z"})
	if err != nil {
		t.Fatalf("Subset() error = %v", err)
	}
	if len(missing) != 1 || missing[0] != "Z" {
		t.Errorf("missing = %v, want [Z]", missing)
	}
	if got := len(m.Labels(chart.Bottom)); got != 1 {
		t.Errorf("got %d labels, want 1", got)
	}
}

func TestSubsetZeroMatchFails(t *testing.T) {
	m := Extract(crowdedChart())

	_, err := m.Subset([]chart.Side{chart.Bottom}, []string{"X", "Y"})
	if !errors.Is(err, errors.ErrCodeNoMatch) {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeNoMatch)
	}

	// Nothing may have been hidden by the failed call.
	if got := len(m.Labels(chart.Bottom)); got != 3 {
		t.Errorf("got %d labels after failed subset, want 3", got)
	}
}

func TestSubsetEmptySideIsNoOp(t *testing.T) {
	m := Extract(crowdedChart())

	// The top side has no labels at all; subsetting must pass through.
	missing, err := m.Subset([]chart.Side{chart.Top}, []string{"A"})
	if err != nil {
		t.Fatalf("Subset() on empty side error = %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestVerticalSideExtraction(t *testing.T) {
	c := charttest.New(10, 8)
	c.AddLabel(chart.Left, "low", 1.5, 0.5, 1.2, true)
	c.AddLabel(chart.Left, "high", 6.5, 0.5, 1.2, true)

	m := Extract(c)
	labels := m.Labels(chart.Left)
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	if labels[0].Pos != 1.5 || labels[1].Pos != 6.5 {
		t.Errorf("positions = %v, %v, want 1.5, 6.5", labels[0].Pos, labels[1].Pos)
	}
	if labels[0].ExtentAcross != 1.2 {
		t.Errorf("ExtentAcross = %v, want 1.2", labels[0].ExtentAcross)
	}
}
