// Package align finds the time offset that best matches a test band
// track to a reference band track before per-band correlation.
package align

import (
	"errors"
	"math"

	"github.com/ieee0824/abcmrt-go/internal/mathutil"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// ErrUnalignable reports that no lag inside the search window produced
// a defined alignment, typically because the test track carries no
// energy in the alignment bands.
var ErrUnalignable = errors.New("align: no defined alignment within lag window")

// DefaultMaxLag bounds the lag search in frames (about 1.4 s at the
// 48 kHz / 128-sample hop front end).
const DefaultMaxLag = 512

// Config controls the lag search.
type Config struct {
	// MaxLag is the largest lag in frames considered. Zero selects
	// DefaultMaxLag.
	MaxLag int
}

func (c Config) maxLag() int {
	if c.MaxLag <= 0 {
		return DefaultMaxLag
	}
	return c.MaxLag
}

// Find returns the lag that maximizes the normalized cross-correlation
// of the alignment bands, so that ref is best matched by test frames
// [lag, lag+ref.Frames()). The test track is padded with zero frames
// when shorter than the reference, making lag 0 always a candidate.
// Ties are broken by the smallest lag. ErrUnalignable is returned when
// every candidate lag is degenerate.
func Find(ref, test *spectrum.Track, cfg Config) (int, error) {
	q := ref.Frames()
	if q == 0 {
		return 0, ErrUnalignable
	}
	test = test.PadFrames(q)
	n := test.Frames()

	maxLag := n - q
	if m := cfg.maxLag(); maxLag > m {
		maxLag = m
	}

	// Reference alignment rows normalized once: zero mean, unit sum of
	// squares per row. A degenerate reference row is dropped from the
	// group.
	type normRow struct {
		band int
		vals []float64
	}
	var refRows []normRow
	for _, b := range spectrum.AlignBands {
		r := normalize(ref.Row(b))
		if r != nil {
			refRows = append(refRows, normRow{band: b, vals: r})
		}
	}
	if len(refRows) == 0 {
		return 0, ErrUnalignable
	}

	// Running per-row window sums over the test track let each lag
	// reuse the previous one: drop the frame that left, add the frame
	// that entered.
	sums := make(map[int]float64, len(refRows))
	for _, rr := range refRows {
		sums[rr.band] = mathutil.SumVec(test.Row(rr.band)[:q])
	}

	bestLag, bestScore := -1, math.Inf(-1)
	for lag := 0; lag <= maxLag; lag++ {
		if lag > 0 {
			for _, rr := range refRows {
				row := test.Row(rr.band)
				sums[rr.band] += row[lag+q-1] - row[lag-1]
			}
		}

		score, ok := 0.0, false
		for _, rr := range refRows {
			row := test.Row(rr.band)[lag : lag+q]
			mean := sums[rr.band] / float64(q)
			ss := 0.0
			for _, v := range row {
				d := v - mean
				ss += d * d
			}
			if ss == 0 {
				continue // zero-variance window in this band
			}
			inv := 1 / math.Sqrt(ss)
			dot := 0.0
			for i, v := range row {
				dot += (v - mean) * inv * rr.vals[i]
			}
			score += dot
			ok = true
		}

		// Strict improvement keeps the smallest lag on ties.
		if ok && score > bestScore {
			bestLag, bestScore = lag, score
		}
	}

	if bestLag < 0 {
		return 0, ErrUnalignable
	}
	return bestLag, nil
}

// normalize returns row with zero mean and unit sum of squares, or nil
// if the row has zero variance.
func normalize(row []float64) []float64 {
	n := len(row)
	if n == 0 {
		return nil
	}
	mean := mathutil.MeanVec(row)

	out := make([]float64, n)
	ss := 0.0
	for i, v := range row {
		out[i] = v - mean
		ss += out[i] * out[i]
	}
	if ss == 0 {
		return nil
	}
	inv := 1 / math.Sqrt(ss)
	for i := range out {
		out[i] *= inv
	}
	return out
}
