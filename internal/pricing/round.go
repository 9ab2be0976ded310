package pricing

import "math"

// floatSlack absorbs binary-float noise from the multiplier chains so values
// like 250*2.2 (550.0000000000001) don't round up an extra step.
const floatSlack = 1e-9

// roundUpToStep rounds v up to the next multiple of step. A step of 1 or less
// rounds up to whole dollars. Negative inputs clamp to zero: the engine never
// emits a negative fee.
func roundUpToStep(v float64, step int) int {
	if v <= 0 {
		return 0
	}
	n := int(math.Ceil(v - floatSlack))
	if step <= 1 {
		return n
	}
	if rem := n % step; rem != 0 {
		n += step - rem
	}
	return n
}

// ceilDollars rounds v up to a whole dollar.
func ceilDollars(v float64) int {
	return roundUpToStep(v, 1)
}
