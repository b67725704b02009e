package sm2

import (
	"fmt"
	"math"
)

// Parameters holds the tunable constants of the SM-2 variant.
type Parameters struct {
	InitialEase    float64
	MinEase        float64
	MaxEase        float64
	AgainPenalty   float64
	AgainInterval  int
	FirstInterval  int
	SecondInterval int
	HardMultiplier float64
	EasyMultiplier float64
}

// DefaultParameters returns the stock SM-2 variant constants.
func DefaultParameters() Parameters {
	return Parameters{
		InitialEase:    2.5,
		MinEase:        1.3,
		MaxEase:        2.5,
		AgainPenalty:   0.2,
		AgainInterval:  1,
		FirstInterval:  1,
		SecondInterval: 6,
		HardMultiplier: 1.2,
		EasyMultiplier: 1.3,
	}
}

// Validate checks that the parameters keep every transition inside the
// state invariants.
func (p Parameters) Validate() error {
	for name, v := range map[string]float64{
		"initial_ease":    p.InitialEase,
		"min_ease":        p.MinEase,
		"max_ease":        p.MaxEase,
		"again_penalty":   p.AgainPenalty,
		"hard_multiplier": p.HardMultiplier,
		"easy_multiplier": p.EasyMultiplier,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is invalid: %v", name, v)
		}
	}

	if p.MinEase <= 0 {
		return fmt.Errorf("min_ease must be > 0 (got %v)", p.MinEase)
	}
	if p.MaxEase < p.MinEase {
		return fmt.Errorf("max_ease must be >= min_ease (got %v < %v)", p.MaxEase, p.MinEase)
	}
	if p.InitialEase < p.MinEase || p.InitialEase > p.MaxEase {
		return fmt.Errorf("initial_ease must be within [%v, %v] (got %v)", p.MinEase, p.MaxEase, p.InitialEase)
	}
	if p.AgainPenalty < 0 {
		return fmt.Errorf("again_penalty must be >= 0 (got %v)", p.AgainPenalty)
	}
	if p.AgainInterval < 1 || p.FirstInterval < 1 || p.SecondInterval < 1 {
		return fmt.Errorf("again/first/second intervals must be >= 1 day (got %d/%d/%d)",
			p.AgainInterval, p.FirstInterval, p.SecondInterval)
	}
	if p.HardMultiplier <= 0 || p.EasyMultiplier <= 0 {
		return fmt.Errorf("interval multipliers must be > 0 (got hard=%v easy=%v)", p.HardMultiplier, p.EasyMultiplier)
	}
	return nil
}
