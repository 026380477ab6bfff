// Package score turns an aligned pair of band tracks into a single
// word similarity: per-band Pearson correlation, attention weighting
// driven by relative band energy, and the weighted fusion that ranks
// the six candidate words.
package score

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ieee0824/abcmrt-go/spectrum"
)

// BandCorrelation is one band's correlation between reference and
// aligned test trajectories. A band with zero variance in either
// trajectory is not an error: it is marked invalid and carries the
// neutral coefficient 0 so downstream weighting still produces a score.
type BandCorrelation struct {
	Coeff float64
	Valid bool
}

// CorrelationVector holds one BandCorrelation per AI band.
type CorrelationVector [spectrum.NumBands]BandCorrelation

// BandCorrelations computes the Pearson correlation per band between
// ref and the test segment starting at lag, over ref.Frames() frames.
// The test track is zero-padded when the window runs past its end.
func BandCorrelations(ref, test *spectrum.Track, lag int) CorrelationVector {
	q := ref.Frames()
	test = test.PadFrames(lag + q)

	var out CorrelationVector
	for b := 0; b < spectrum.NumBands; b++ {
		x := ref.Row(b)
		y := test.Row(b)[lag : lag+q]
		if constantRow(x) || constantRow(y) {
			continue // neutral: Coeff 0, Valid false
		}
		out[b] = BandCorrelation{Coeff: stat.Correlation(x, y, nil), Valid: true}
	}
	return out
}

// constantRow reports whether every value equals the first (zero
// variance), including the empty row.
func constantRow(row []float64) bool {
	if len(row) == 0 {
		return true
	}
	for _, v := range row[1:] {
		if v != row[0] {
			return false
		}
	}
	return true
}
