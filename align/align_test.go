package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/abcmrt-go/spectrum"
)

func tone(freq float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * freq * float64(i) / spectrum.SampleRate)
	}
	return s
}

// burst is silence with a 600 Hz burst in the middle, giving the
// alignment bands a clear temporal landmark.
func burst(n, at, dur int) []float64 {
	s := make([]float64, n)
	b := tone(600, dur)
	copy(s[at:], b)
	return s
}

func TestFindZeroLag(t *testing.T) {
	ref := spectrum.Compute(burst(20000, 5000, 4000))
	lag, err := Find(ref, ref, Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, lag)
}

func TestFindKnownShift(t *testing.T) {
	// Shift by whole hops so frames line up exactly.
	const shift = 8 * spectrum.HopSize
	ref := spectrum.Compute(burst(20000, 2000, 4000))
	test := spectrum.Compute(burst(20000+shift, 2000+shift, 4000))
	lag, err := Find(ref, test, Config{})
	require.NoError(t, err)
	assert.Equal(t, 8, lag)
}

func TestFindRespectsLagWindow(t *testing.T) {
	const shift = 32 * spectrum.HopSize
	ref := spectrum.Compute(burst(20000, 2000, 4000))
	test := spectrum.Compute(burst(20000+shift, 2000+shift, 4000))
	lag, err := Find(ref, test, Config{MaxLag: 4})
	require.NoError(t, err)
	assert.LessOrEqual(t, lag, 4)
}

func TestFindShortTestPadded(t *testing.T) {
	ref := spectrum.Compute(burst(20000, 2000, 4000))
	test := spectrum.Compute(burst(10000, 2000, 4000))
	lag, err := Find(ref, test, Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, lag)
}

func TestFindSilentReference(t *testing.T) {
	ref := spectrum.Compute(make([]float64, 20000))
	test := spectrum.Compute(burst(20000, 2000, 4000))
	_, err := Find(ref, test, Config{})
	assert.ErrorIs(t, err, ErrUnalignable)
}

func TestFindEmptyReference(t *testing.T) {
	ref := spectrum.NewTrack(0)
	test := spectrum.Compute(burst(20000, 2000, 4000))
	_, err := Find(ref, test, Config{})
	assert.ErrorIs(t, err, ErrUnalignable)
}
