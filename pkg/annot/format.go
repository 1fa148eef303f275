package annot

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/annotick/pkg/annot/geometry"
	"github.com/matzehuels/annotick/pkg/chart"
	"github.com/matzehuels/annotick/pkg/errors"
)

// FormatOption configures a FormatLabels call.
type FormatOption func(*formatOptions)

type formatOptions struct {
	ticks  bool
	logger *log.Logger
}

// IncludeTicks also applies each attribute to the tick mark paired with a
// matched label. Attributes a tick does not support are skipped silently;
// only labels are strict about unknown attributes.
func IncludeTicks() FormatOption {
	return func(o *formatOptions) { o.ticks = true }
}

// FormatLogger sets the diagnostics sink for FormatLabels.
func FormatLogger(logger *log.Logger) FormatOption {
	return func(o *formatOptions) { o.logger = logger }
}

// FormatLabels applies the named visual attributes to the matched tick
// labels of an axis. labels selects which label texts to format; nil or
// empty formats every visible label.
//
// An empty attrs map is an EMPTY_ATTRIBUTES error. An attribute a label does
// not support is a NO_ATTRIBUTE error. A labels subset matching nothing on a
// side with visible labels is a NO_MATCH error; partial matches are warnings.
func FormatLabels(c chart.Chart, axis string, labels []string, attrs map[string]any, opts ...FormatOption) error {
	o := formatOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if len(attrs) == 0 {
		return errors.New(errors.ErrCodeEmptyAttributes, "no attributes given to format labels")
	}

	sides, err := chart.ParseAxis(axis)
	if err != nil {
		return err
	}

	m := geometry.Extract(c)

	var keep map[string]bool
	if len(labels) > 0 {
		missing, err := m.CheckLabels(sides, labels)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			o.logger.Warnf("%d label(s) were not found among the %s ticklabels: %v",
				len(missing), axis, missing)
		}
		keep = map[string]bool{}
		for _, l := range labels {
			keep[l] = true
		}
	}

	// Apply in a stable attribute order so failures are deterministic.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, side := range sides {
		records := m.Labels(side)
		ticks := m.Ticks(side)
		for i, lr := range records {
			if keep != nil && !keep[lr.Text] {
				continue
			}
			for _, name := range names {
				if err := lr.Label.SetAttr(name, attrs[name]); err != nil {
					return err
				}
				if !o.ticks {
					continue
				}
				if err := ticks[i].Tick.SetAttr(name, attrs[name]); err != nil {
					if errors.Is(err, errors.ErrCodeNoAttribute) {
						continue
					}
					return err
				}
			}
		}
	}
	return nil
}
