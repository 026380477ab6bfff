package abcmrt

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// speechThreshold is the normalized-autocorrelation ceiling below which
// a clip is considered speech. Periodic signals (speech) show
// anticorrelation at some lag; noise does not.
const speechThreshold = -0.1

// DetectSpeech reports whether samples contain speech-like periodic
// content. It computes the full normalized autocorrelation via FFT and
// checks that its minimum falls below the -0.1 threshold. Silence and
// stationary noise fail the check; such clips are scored as
// unintelligible without running recognition.
func DetectSpeech(samples []float64) bool {
	n := len(samples)
	if n == 0 {
		return false
	}

	r0 := 0.0
	for _, s := range samples {
		r0 += s * s
	}
	if r0 == 0 {
		return false
	}

	// Full linear autocorrelation via a zero-padded circular one.
	size := 1
	for size < 2*n {
		size <<= 1
	}
	fft := fourier.NewFFT(size)
	padded := make([]float64, size)
	copy(padded, samples)

	coeff := fft.Coefficients(nil, padded)
	for i, c := range coeff {
		re := real(c)
		im := imag(c)
		coeff[i] = complex(re*re+im*im, 0)
	}
	ac := fft.Sequence(nil, coeff)

	// Sequence(Coefficients(x)) scales by size.
	minCorr := math.Inf(1)
	for _, v := range ac {
		v /= float64(size) * r0
		if v < minCorr {
			minCorr = v
		}
	}

	if math.IsNaN(minCorr) {
		return false
	}
	return minCorr < speechThreshold
}
