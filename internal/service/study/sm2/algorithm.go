package sm2

import (
	"math"
)

// easeDelta is the SM-2 ease adjustment for a quality on the 0-5 scale.
func easeDelta(q int) float64 {
	d := float64(5 - q)
	return 0.1 - d*(0.08+d*0.02)
}

func clampEase(p Parameters, ease float64) float64 {
	return math.Max(p.MinEase, math.Min(p.MaxEase, ease))
}

// roundDays rounds to the nearest whole day, halves away from zero.
func roundDays(x float64) int {
	return int(math.Round(x))
}
