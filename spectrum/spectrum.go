// Package spectrum decomposes speech at 48 kHz into 21 articulation
// index (AI) band magnitude tracks, the time-frequency representation
// the recognizer compares and correlates.
//
// The front end is a length-512 periodic Hann window with 75% overlap.
// Only the first 215 FFT bins (up to 20 kHz) are kept, magnitudes are
// compressed by the Stevens' law exponent 0.6 and averaged into the
// fixed AI bands.
package spectrum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ieee0824/abcmrt-go/internal/mathutil"
)

const (
	// SampleRate is the fixed processing rate in Hz.
	SampleRate = 48000

	// WindowSize is the STFT window length in samples.
	WindowSize = 512

	// HopSize is the STFT hop in samples (75% overlap).
	HopSize = WindowSize / 4

	// numBins is the number of retained FFT bins (through 20 kHz).
	numBins = 215

	// compression is the Stevens' law magnitude exponent.
	compression = 0.6
)

// Analyzer computes band tracks. It holds reusable scratch buffers and
// is not safe for concurrent use; create one per goroutine.
type Analyzer struct {
	fft    *fourier.FFT
	window []float64
	frame  []float64
	coeff  []complex128
}

// New creates an Analyzer.
func New() *Analyzer {
	a := &Analyzer{
		fft:    fourier.NewFFT(WindowSize),
		window: make([]float64, WindowSize),
		frame:  make([]float64, WindowSize),
		coeff:  make([]complex128, WindowSize/2+1),
	}
	// Periodic Hann window
	for i := range a.window {
		a.window[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/WindowSize)
	}
	return a
}

// Compute produces the AI band track for samples at SampleRate.
// Recordings shorter than one window yield a track with zero frames;
// distinguishing that from genuine silence is up to the caller.
func (a *Analyzer) Compute(samples []float64) *Track {
	m := len(samples)
	if m < WindowSize {
		return NewTrack(0)
	}

	nframes := (m-WindowSize+HopSize-1)/HopSize + 1
	track := &Track{data: mathutil.NewMat(NumBands, nframes)}

	for i := 0; i < nframes; i++ {
		start := i * HopSize

		// Window the frame, zero-padding the final partial window.
		avail := m - start
		if avail > WindowSize {
			avail = WindowSize
		}
		for j := 0; j < avail; j++ {
			a.frame[j] = samples[start+j] * a.window[j]
		}
		for j := avail; j < WindowSize; j++ {
			a.frame[j] = 0
		}

		a.fft.Coefficients(a.coeff, a.frame)

		// Compressed magnitudes averaged into AI bands
		for b := 0; b < NumBands; b++ {
			first, last := BandBins(b)
			sum := 0.0
			for k := first; k <= last && k < numBins; k++ {
				sum += math.Pow(cmplx.Abs(a.coeff[k]), compression)
			}
			track.data[b][i] = sum / float64(binsPerBand[b])
		}
	}

	return track
}

// Compute is a convenience wrapper that allocates a fresh Analyzer.
func Compute(samples []float64) *Track {
	return New().Compute(samples)
}
