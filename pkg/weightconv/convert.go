package weightconv

import (
	"errors"
	"math"

	"agrosync/entities"
)

// DefaultFactor is the fresh→dry ratio used when none is configured.
const DefaultFactor = 0.38

var (
	ErrInvalidWeight = errors.New("weight must be a positive finite number")
	ErrInvalidState  = errors.New("product state must be baba or seco")
)

// Conversion is the normalized weight triple for a delivery. Dry is the
// canonical stored weight; Fresh is non-nil only when the input was weighed
// as fresh (baba) product.
type Conversion struct {
	Dry    float64
	Fresh  *float64
	Factor float64
}

// Convert normalizes a single measured weight under the given product state.
// state "seco": the input already is the dry weight. state "baba": the input
// is fresh weight and the dry weight is derived as fresh*factor. Any other
// state is rejected; the stored state column is a two-valued enum. A factor
// <= 0 falls back to DefaultFactor. Pure, no side effects.
func Convert(input float64, state string, factor float64) (Conversion, error) {
	if input <= 0 || math.IsNaN(input) || math.IsInf(input, 0) {
		return Conversion{}, ErrInvalidWeight
	}
	if factor <= 0 {
		factor = DefaultFactor
	}
	switch state {
	case entities.StateFresh:
		fresh := input
		return Conversion{Dry: fresh * factor, Fresh: &fresh, Factor: factor}, nil
	case entities.StateDry:
		return Conversion{Dry: input, Fresh: nil, Factor: factor}, nil
	default:
		return Conversion{}, ErrInvalidState
	}
}
