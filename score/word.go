package score

import "github.com/ieee0824/abcmrt-go/spectrum"

// MinScore is the score assigned to a candidate whose test pairing is
// unalignable: the minimum of the correlation range, so the candidate
// stays in the ranking but can never win against a defined score.
const MinScore = -1.0

// Word fuses a correlation vector and an attention weight vector into
// one scalar similarity: the weighted average of per-band correlations.
// Negative and invalid band correlations contribute zero, so a badly
// mismatched band cannot drag the score below the no-evidence level.
func Word(corr CorrelationVector, w [spectrum.NumBands]float64) float64 {
	num, den := 0.0, 0.0
	for b := 0; b < spectrum.NumBands; b++ {
		c := corr[b].Coeff
		if !corr[b].Valid || c < 0 {
			c = 0
		}
		num += w[b] * c
		den += w[b]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Select returns the index of the highest score. Ties resolve to the
// lowest index, keeping word selection deterministic.
func Select(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
