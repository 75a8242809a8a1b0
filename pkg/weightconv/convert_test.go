package weightconv

import (
	"errors"
	"math"
	"testing"

	"agrosync/entities"
)

func TestConvert_Dry(t *testing.T) {
	got, err := Convert(100, entities.StateDry, 0)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Dry != 100 {
		t.Errorf("Dry = %f, want 100", got.Dry)
	}
	if got.Fresh != nil {
		t.Errorf("Fresh = %v, want nil", *got.Fresh)
	}
	if got.Factor != DefaultFactor {
		t.Errorf("Factor = %f, want %f", got.Factor, DefaultFactor)
	}
}

func TestConvert_Fresh(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		factor  float64
		wantDry float64
	}{
		{"default factor", 100, 0, 38.0},
		{"explicit default", 100, 0.38, 38.0},
		{"custom factor", 200, 0.40, 80.0},
		{"small lot", 2.5, 0.38, 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input, entities.StateFresh, tt.factor)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if diff := got.Dry - tt.wantDry; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Dry = %f, want %f", got.Dry, tt.wantDry)
			}
			if got.Fresh == nil || *got.Fresh != tt.input {
				t.Errorf("Fresh = %v, want %f", got.Fresh, tt.input)
			}
		})
	}
}

func TestConvert_InvalidWeight(t *testing.T) {
	for _, w := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Convert(w, entities.StateDry, 0); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("Convert(%f) error = %v, want ErrInvalidWeight", w, err)
		}
	}
}

func TestConvert_RejectsUnknownState(t *testing.T) {
	for _, state := range []string{"", "banana", "humedo", "BABA", "Seco"} {
		if _, err := Convert(50, state, 0); !errors.Is(err, ErrInvalidState) {
			t.Errorf("Convert(state=%q) error = %v, want ErrInvalidState", state, err)
		}
	}
}
