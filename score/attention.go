package score

import "github.com/ieee0824/abcmrt-go/spectrum"

// WeightTotal is the fixed sum of every attention weight vector, one
// unit per band, keeping word scores comparable across trials.
const WeightTotal = float64(spectrum.NumBands)

// AttentionWeights derives per-band attention from the relative band
// energies of the aligned reference and test segments. A band's raw
// attention is the mean of the two recordings' energy shares in that
// band, so bands carrying negligible energy (the upper AI bands of
// narrowband audio, for instance) receive near-zero weight without any
// explicit bandwidth classification. The vector is scaled to sum to
// WeightTotal; all-silence input falls back to uniform weights.
func AttentionWeights(ref, test *spectrum.Track, lag int) [spectrum.NumBands]float64 {
	q := ref.Frames()
	test = test.PadFrames(lag + q)

	var refE, testE [spectrum.NumBands]float64
	refTotal, testTotal := 0.0, 0.0
	for b := 0; b < spectrum.NumBands; b++ {
		refE[b] = ref.BandEnergy(b, 0, q)
		testE[b] = test.BandEnergy(b, lag, q)
		refTotal += refE[b]
		testTotal += testE[b]
	}

	var w [spectrum.NumBands]float64
	sum := 0.0
	for b := 0; b < spectrum.NumBands; b++ {
		share := 0.0
		if refTotal > 0 {
			share += refE[b] / refTotal
		}
		if testTotal > 0 {
			share += testE[b] / testTotal
		}
		w[b] = share / 2
		sum += w[b]
	}

	if sum == 0 {
		// Both recordings silent: defined uniform attention.
		for b := range w {
			w[b] = WeightTotal / spectrum.NumBands
		}
		return w
	}

	scale := WeightTotal / sum
	for b := range w {
		w[b] *= scale
	}
	return w
}
