package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds half away from zero and returns an int, the way counts are
// derived from scaled densities.
func Round(v float64) int {
	return int(math.Round(v))
}

// PerFrame converts a per-frame multiplier tuned at 60 Hz into the factor for
// a step of dt seconds.
func PerFrame(k, dt float64) float64 {
	return math.Pow(k, dt*60)
}

// Wrap returns x moved to the opposite side when it leaves [lo, hi].
func Wrap(x, lo, hi float64) float64 {
	if x < lo {
		return hi
	}
	if x > hi {
		return lo
	}
	return x
}
