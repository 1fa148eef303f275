package errors

import (
	"math"
)

// ValidateFloat validates that a named float parameter is finite and within
// [min, max]. It is used by public entry points to reject malformed requests
// before any chart state is touched.
//
// Pass math.Inf(1) as max (or math.Inf(-1) as min) for a one-sided bound.
func ValidateFloat(name string, value, min, max float64) error {
	if min > max {
		return New(ErrCodeInternal, "bounds for %s are inverted: [%v, %v]", name, min, max)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidValue, "%s (%v) is not a valid number", name, value)
	}

	if value < min || value > max {
		return New(ErrCodeInvalidValue, "%s (%v) is not within the bounds of [%v, %v]", name, value, min, max)
	}

	return nil
}

// ValidateInt validates that a named integer parameter is at least min.
func ValidateInt(name string, value, min int) error {
	if value < min {
		return New(ErrCodeInvalidValue, "%s (%d) must be at least %d", name, value, min)
	}
	return nil
}

// ValidateFraction validates that a named parameter is a finite value in [0, 1].
// Used for relative quantities such as speed and rel_tick_size.
func ValidateFraction(name string, value float64) error {
	return ValidateFloat(name, value, 0, 1)
}

// ValidateNonNegative validates that a named parameter is finite and >= 0.
func ValidateNonNegative(name string, value float64) error {
	return ValidateFloat(name, value, 0, math.Inf(1))
}
