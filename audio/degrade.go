package audio

import "math/rand"

// Attenuate scales samples by gain into a new slice.
func Attenuate(samples []float64, gain float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s * gain
	}
	return out
}

// Shift delays samples by n, padding the front with zeros. The result
// has length len(samples)+n. A non-positive n returns a copy.
func Shift(samples []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, len(samples)+n)
	copy(out[n:], samples)
	return out
}

// AddNoise mixes zero-mean uniform noise of the given amplitude into
// samples, using rng for reproducibility.
func AddNoise(samples []float64, amplitude float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s + amplitude*(2*rng.Float64()-1)
	}
	return out
}

// SpeedPerturb resamples the input audio samples by the given speed
// factor with linear interpolation. A factor > 1.0 makes the audio
// faster (shorter); < 1.0 slower (longer). The sample rate is
// unchanged; the returned slice has length int(len(samples) / factor).
func SpeedPerturb(samples []float64, factor float64) []float64 {
	if len(samples) == 0 || factor <= 0 {
		return nil
	}

	origLen := len(samples)
	newLen := int(float64(origLen) / factor)
	if newLen == 0 {
		return nil
	}

	result := make([]float64, newLen)
	for i := 0; i < newLen; i++ {
		srcIdx := float64(i) * factor
		idx0 := int(srcIdx)
		frac := srcIdx - float64(idx0)

		if idx0+1 < origLen {
			result[i] = samples[idx0]*(1.0-frac) + samples[idx0+1]*frac
		} else if idx0 < origLen {
			result[i] = samples[idx0]
		}
	}

	return result
}
