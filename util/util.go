package util

// GenerateLut builds a look-up table that rises from 0 towards 1 over the
// first half and mirrors back down over the second, shaped by curve.
func GenerateLut(length int, curve func(float64) float64) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}
	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = curve(value)
		lut[j] = curve(value)
	}
	return lut
}

// Falloff returns a length long table that starts near 1 and decays towards
// 0, taken from the falling half of a GenerateLut ramp.
func Falloff(length int, curve func(float64) float64) []float64 {
	if length <= 0 {
		return nil
	}
	ramp := GenerateLut(length*2+2, curve)
	return append([]float64(nil), ramp[length+1:length*2+1]...)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
