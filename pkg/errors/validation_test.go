package errors

import (
	"math"
	"testing"
)

func TestValidateViewport(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"typical", 800, 400, false},
		{"zero", 0, 0, false},
		{"negative width", -1, 400, true},
		{"negative height", 800, -0.5, true},
		{"nan", math.NaN(), 400, true},
		{"inf height", 800, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewport(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewport(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidViewport) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidViewport)
			}
		})
	}
}

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -20, false},
		{"nan", math.NaN(), true},
		{"+inf", math.Inf(1), true},
		{"-inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinite("padding", tt.v)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDecimalPlaces(t *testing.T) {
	tests := []struct {
		name    string
		places  int
		wantErr bool
	}{
		{"zero", 0, false},
		{"default", 2, false},
		{"max", MaxDecimalPlaces, false},
		{"negative", -1, true},
		{"too many", MaxDecimalPlaces + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecimalPlaces(tt.places)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDecimalPlaces(%d) error = %v, wantErr %v", tt.places, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaired(t *testing.T) {
	tests := []struct {
		name           string
		labels, values int
		wantErr        bool
	}{
		{"equal", 12, 12, false},
		{"empty", 0, 0, false},
		{"fewer values", 12, 5, true},
		{"more values", 2, 3, true},
		{"values without labels", 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaired(tt.labels, tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaired(%d, %d) error = %v, wantErr %v", tt.labels, tt.values, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeLengthMismatch) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeLengthMismatch)
			}
		})
	}
}
