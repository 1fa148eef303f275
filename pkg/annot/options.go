package annot

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/annotick/pkg/errors"
)

// Default parameter values, matching the documented behavior of Annotate.
const (
	DefaultRelLabelSize = 1.1
	DefaultPerpShift    = 5.0
	DefaultRelTickSize  = 0.25
	DefaultResolution   = 1000
	DefaultSpeed        = 0.1
)

// Option configures an Annotate call.
type Option func(*options)

type options struct {
	expandBefore float64
	expandAfter  float64
	relLabelSize float64
	perpShift    float64
	relTickSize  float64
	resolution   int
	speed        float64
	logger       *log.Logger
}

func newOptions(opts ...Option) options {
	o := options{
		relLabelSize: DefaultRelLabelSize,
		perpShift:    DefaultPerpShift,
		relTickSize:  DefaultRelTickSize,
		resolution:   DefaultResolution,
		speed:        DefaultSpeed,
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validate rejects out-of-bounds parameters before any chart state is
// touched.
func (o options) validate() error {
	if err := errors.ValidateInt("resolution", o.resolution, 1); err != nil {
		return err
	}
	if err := errors.ValidateFraction("speed", o.speed); err != nil {
		return err
	}
	if err := errors.ValidateFraction("rel_tick_size", o.relTickSize); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("rel_label_size", o.relLabelSize); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("perp_shift", o.perpShift); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("expand_axis", o.expandBefore); err != nil {
		return err
	}
	return errors.ValidateNonNegative("expand_axis", o.expandAfter)
}

// WithExpand enlarges the axis symmetrically by the given fraction of its
// extent before layout; 0.1 adds 5% on each end.
func WithExpand(fraction float64) Option {
	return func(o *options) {
		o.expandBefore = fraction / 2
		o.expandAfter = fraction / 2
	}
}

// WithExpandRange enlarges the axis by separate fractions before its lower
// end and after its upper end.
func WithExpandRange(before, after float64) Option {
	return func(o *options) {
		o.expandBefore = before
		o.expandAfter = after
	}
}

// WithRelLabelSize sets the relative inflation of label footprints used for
// overlap detection. Values above 1 enforce a visual gap between labels.
func WithRelLabelSize(size float64) Option {
	return func(o *options) { o.relLabelSize = size }
}

// WithPerpShift sets how far labels move away from the plot, as a multiple
// of the paired tick's length.
func WithPerpShift(shift float64) Option {
	return func(o *options) { o.perpShift = shift }
}

// WithRelTickSize sets the fraction of the perpendicular shift used for the
// connector line's straight stubs.
func WithRelTickSize(size float64) Option {
	return func(o *options) { o.relTickSize = size }
}

// WithResolution sets the number of discrete bins the axis is divided into
// for overlap resolution.
func WithResolution(resolution int) Option {
	return func(o *options) { o.resolution = resolution }
}

// WithSpeed sets the fraction of the resolution a label may travel per
// relocation round, in [0, 1].
func WithSpeed(speed float64) Option {
	return func(o *options) { o.speed = speed }
}

// WithLogger sets the diagnostics sink. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}
