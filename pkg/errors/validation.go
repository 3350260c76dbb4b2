package errors

import (
	"math"
)

// MaxDecimalPlaces bounds the fractional digits used for axis labels.
// float64 carries about 17 significant digits, so more places only print noise.
const MaxDecimalPlaces = 15

// ValidateFinite rejects NaN and ±Inf for a named configuration value.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidateViewport validates the view size supplied to a layout pass.
//
// Validation rules:
//   - Both dimensions must be finite
//   - Neither dimension may be negative
//
// A zero-sized viewport is accepted: it yields a well-defined (degenerate)
// plan rather than an error.
func ValidateViewport(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidViewport, "viewport must be finite, got %vx%v", width, height)
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidViewport, "viewport cannot be negative, got %vx%v", width, height)
	}
	return nil
}

// ValidateDecimalPlaces checks the label precision is within [0, MaxDecimalPlaces].
func ValidateDecimalPlaces(places int) error {
	if places < 0 {
		return New(ErrCodeInvalidStep, "decimal places cannot be negative, got %d", places)
	}
	if places > MaxDecimalPlaces {
		return New(ErrCodeInvalidStep, "decimal places too large (max %d), got %d", MaxDecimalPlaces, places)
	}
	return nil
}

// ValidatePaired checks that labels and values pair one to one, as required
// wherever rows move together. A plain series tolerates any mismatch.
func ValidatePaired(labels, values int) error {
	if values != labels {
		return New(ErrCodeLengthMismatch, "%d labels do not pair with %d values", labels, values)
	}
	return nil
}
