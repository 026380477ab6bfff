// Package abcmrt estimates speech intelligibility with the ABC-MRT16
// algorithm: an objective stand-in for the Modified Rhyme Test that
// compares a test recording against six phonetically similar reference
// words in the articulation index band domain and aggregates the
// recognition outcomes into a guessing-corrected success rate.
//
// The algorithm is described in S. Voran, "A multiple bandwidth
// objective speech intelligibility estimator based on articulation
// index band correlations and attention," Proc. IEEE ICASSP 2017.
package abcmrt

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ieee0824/abcmrt-go/align"
	"github.com/ieee0824/abcmrt-go/audio"
	"github.com/ieee0824/abcmrt-go/score"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// SampleRate is the fixed audio sample rate the algorithm operates at.
const SampleRate = spectrum.SampleRate

// MinSpeechSamples is the minimum clip length; shorter clips are
// zero-padded before analysis.
const MinSpeechSamples = 42000

// Trial is one MRT unit: six candidate reference tracks, the test
// track recorded through the system under test, and the index of the
// candidate that was actually spoken.
type Trial struct {
	ID         string // optional identity for error reporting
	Candidates [NumWords]*spectrum.Track
	Test       *spectrum.Track
	Target     int
}

// Outcome is the immutable result of scoring one trial.
type Outcome struct {
	Selected int  // recognized candidate index
	Correct  bool // Selected == Target
	Scores   [NumWords]float64
}

// ComputeBandTrack converts a sample sequence into its AI band track.
// Input at a rate other than SampleRate is resampled first. The
// returned track has zero frames when the clip is shorter than one
// analysis window; callers must treat that as a failed trial, not a
// filterbank fault.
func ComputeBandTrack(samples []float64, sampleRate int) (*spectrum.Track, error) {
	if sampleRate <= 0 {
		return nil, invalidInput("ComputeBandTrack", "non-positive sample rate %d", sampleRate)
	}
	if len(samples) == 0 {
		return nil, invalidInput("ComputeBandTrack", "empty sample sequence")
	}
	if sampleRate != SampleRate {
		var err error
		samples, err = audio.Resample(samples, sampleRate, SampleRate)
		if err != nil {
			return nil, fmt.Errorf("abcmrt: resample %d->%d Hz: %w", sampleRate, SampleRate, err)
		}
	}
	return spectrum.Compute(samples), nil
}

// PadSpeech returns samples extended with trailing zeros to at least
// MinSpeechSamples, as the algorithm expects.
func PadSpeech(samples []float64) []float64 {
	if len(samples) >= MinSpeechSamples {
		return samples
	}
	out := make([]float64, MinSpeechSamples)
	copy(out, samples)
	return out
}

// ScoreTrial scores one trial with the default alignment window.
func ScoreTrial(t Trial) (Outcome, error) {
	return ScoreTrialConfig(t, align.Config{})
}

// ScoreTrialConfig aligns the test track to each candidate, correlates
// the aligned band tracks, weights the band correlations by attention
// and selects the best scoring word. Ties resolve to the lowest
// candidate index.
//
// A candidate the test cannot be aligned to receives the minimum score
// and stays in the ranking. When no candidate aligns the behavior
// depends on the test track: a silent (zero-variance) test is scored
// through the neutral-correlation path at zero lag, while a non-silent
// one fails with AlignmentError.
func ScoreTrialConfig(t Trial, cfg align.Config) (Outcome, error) {
	if t.Target < 0 || t.Target >= NumWords {
		return Outcome{}, invalidInput("ScoreTrial", "target index %d out of range", t.Target)
	}
	if t.Test == nil {
		return Outcome{}, invalidInput("ScoreTrial", "nil test track")
	}
	if t.Test.Bands() != spectrum.NumBands {
		return Outcome{}, invalidInput("ScoreTrial", "test track has %d bands, want %d", t.Test.Bands(), spectrum.NumBands)
	}
	for i, c := range t.Candidates {
		if c == nil {
			return Outcome{}, invalidInput("ScoreTrial", "nil candidate track %d", i)
		}
		if c.Bands() != spectrum.NumBands {
			return Outcome{}, invalidInput("ScoreTrial", "candidate %d has %d bands, want %d", i, c.Bands(), spectrum.NumBands)
		}
	}

	if t.Test.Frames() == 0 {
		// Recording shorter than one analysis window: nothing to align.
		return Outcome{}, &AlignmentError{Trial: t.ID}
	}

	silent := silentTrack(t.Test)

	var out Outcome
	aligned := 0
	for i, cand := range t.Candidates {
		lag, err := align.Find(cand, t.Test, cfg)
		if err != nil {
			if !silent {
				out.Scores[i] = score.MinScore
				continue
			}
			lag = 0 // trivial alignment; correlations come out neutral
		}
		corr := score.BandCorrelations(cand, t.Test, lag)
		w := score.AttentionWeights(cand, t.Test, lag)
		out.Scores[i] = score.Word(corr, w)
		aligned++
	}

	if aligned == 0 {
		return Outcome{}, &AlignmentError{Trial: t.ID}
	}

	out.Selected = score.Select(out.Scores[:])
	out.Correct = out.Selected == t.Target
	return out, nil
}

// silentTrack reports whether every band row has zero variance.
func silentTrack(t *spectrum.Track) bool {
	n := t.Frames()
	for b := 0; b < t.Bands(); b++ {
		row := t.Row(b)
		for i := 1; i < n; i++ {
			if row[i] != row[0] {
				return false
			}
		}
	}
	return true
}

// TrialResult pairs one trial's outcome with its scoring error, if
// any. A per-trial AlignmentError never aborts a batch; the caller
// decides whether to exclude the trial from aggregation.
type TrialResult struct {
	Index   int
	Outcome Outcome
	Err     error
}

// ProcessTrials scores trials in parallel with at most workers
// goroutines (workers <= 0 means one per trial). Trials are mutually
// independent, so no state is shared beyond the immutable band
// constants. Cancelling ctx stops submission of further trials;
// results for trials never started carry the context error.
func ProcessTrials(ctx context.Context, trials []Trial, workers int) []TrialResult {
	return processTrials(ctx, trials, align.Config{}, workers)
}

func processTrials(ctx context.Context, trials []Trial, cfg align.Config, workers int) []TrialResult {
	results := make([]TrialResult, len(trials))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range trials {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(trials); j++ {
				results[j] = TrialResult{Index: j, Err: err}
			}
			break
		}
		g.Go(func() error {
			out, err := ScoreTrialConfig(trials[i], cfg)
			results[i] = TrialResult{Index: i, Outcome: out, Err: err}
			return nil
		})
	}
	g.Wait()
	return results
}
