package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease in, ease out curve.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutCubic decelerates towards the end.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// OutBack overshoots the target by an amount controlled by s, then settles.
func OutBack(s float64) Easing {
	return func(t float64) float64 {
		c3 := s + 1
		return 1 + c3*math.Pow(t-1, 3) + s*math.Pow(t-1, 2)
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
