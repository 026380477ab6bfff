package abcmrt

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/abcmrt-go/align"
	"github.com/ieee0824/abcmrt-go/audio"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// synthWord builds a CVC-like clip: a shared "vowel" tone framed by a
// word-specific "consonant" tone, so the six candidates differ the way
// an MRT word list (bad, bat, back, ...) does.
func synthWord(consonantHz float64) []float64 {
	const (
		consLen  = 8000
		vowelLen = 20000
	)
	s := make([]float64, consLen+vowelLen+consLen)
	for i := 0; i < consLen; i++ {
		v := 0.4 * math.Sin(2*math.Pi*consonantHz*float64(i)/SampleRate)
		s[i] = v
		s[consLen+vowelLen+i] = v
	}
	for i := 0; i < vowelLen; i++ {
		s[consLen+i] = 0.7 * math.Sin(2*math.Pi*500*float64(i)/SampleRate)
	}
	return s
}

// wordList is the six-candidate set used by the end-to-end tests.
var wordList = [NumWords]float64{900, 1300, 1800, 2400, 3100, 4000}

func candidateTracks(t *testing.T) [NumWords]*spectrum.Track {
	t.Helper()
	var tracks [NumWords]*spectrum.Track
	for i, hz := range wordList {
		tr, err := ComputeBandTrack(synthWord(hz), SampleRate)
		require.NoError(t, err)
		tracks[i] = tr
	}
	return tracks
}

func TestComputeBandTrackErrors(t *testing.T) {
	var inv *InvalidInputError

	_, err := ComputeBandTrack(nil, SampleRate)
	require.Error(t, err)
	assert.ErrorAs(t, err, &inv)

	_, err = ComputeBandTrack([]float64{0.1}, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &inv)

	_, err = ComputeBandTrack([]float64{0.1}, -8000)
	assert.Error(t, err)
}

func TestComputeBandTrackDeterministic(t *testing.T) {
	s := synthWord(1300)
	a, err := ComputeBandTrack(s, SampleRate)
	require.NoError(t, err)
	b, err := ComputeBandTrack(s, SampleRate)
	require.NoError(t, err)
	require.Equal(t, a.Frames(), b.Frames())
	for band := 0; band < spectrum.NumBands; band++ {
		assert.Equal(t, a.Row(band), b.Row(band), "band %d", band)
	}
}

func TestScoreTrialRecognizesWord(t *testing.T) {
	cands := candidateTracks(t)

	// Test recording: "bat" (index 1) through a mild system under
	// test: a few frames of delay plus attenuation.
	degraded := audio.Shift(audio.Attenuate(synthWord(wordList[1]), 0.5), 4*spectrum.HopSize)
	test, err := ComputeBandTrack(PadSpeech(degraded), SampleRate)
	require.NoError(t, err)

	out, err := ScoreTrial(Trial{Candidates: cands, Test: test, Target: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Selected)
	assert.True(t, out.Correct)
	for i, s := range out.Scores {
		if i == 1 {
			assert.Greater(t, s, 0.9, "target word score")
			continue
		}
		assert.Less(t, s, out.Scores[1], "candidate %d must lose to the target", i)
	}
}

func TestScoreTrialConfigLagWindow(t *testing.T) {
	cands := candidateTracks(t)
	degraded := audio.Shift(synthWord(wordList[2]), 4*spectrum.HopSize)
	test, err := ComputeBandTrack(PadSpeech(degraded), SampleRate)
	require.NoError(t, err)

	// A 4-frame delay fits inside a tight 8-frame lag window.
	out, err := ScoreTrialConfig(Trial{Candidates: cands, Test: test, Target: 2}, align.Config{MaxLag: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Selected)
	assert.True(t, out.Correct)
}

func TestScoreTrialSpeedPerturbed(t *testing.T) {
	cands := candidateTracks(t)
	// A mild time stretch moves the word boundaries a few frames
	// without leaving the candidate's frequency bands.
	stretched := audio.SpeedPerturb(synthWord(wordList[4]), 1.02)
	test, err := ComputeBandTrack(PadSpeech(stretched), SampleRate)
	require.NoError(t, err)

	out, err := ScoreTrial(Trial{Candidates: cands, Test: test, Target: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Selected)
	assert.True(t, out.Correct)
}

func TestScoreTrialShiftInvariant(t *testing.T) {
	cands := candidateTracks(t)
	clean := synthWord(wordList[2])

	base, err := ComputeBandTrack(PadSpeech(clean), SampleRate)
	require.NoError(t, err)
	shifted, err := ComputeBandTrack(PadSpeech(audio.Shift(clean, 6*spectrum.HopSize)), SampleRate)
	require.NoError(t, err)

	outBase, err := ScoreTrial(Trial{Candidates: cands, Test: base, Target: 2})
	require.NoError(t, err)
	outShift, err := ScoreTrial(Trial{Candidates: cands, Test: shifted, Target: 2})
	require.NoError(t, err)

	assert.Equal(t, outBase.Selected, outShift.Selected)
	assert.True(t, outShift.Correct)
	assert.InDelta(t, outBase.Scores[2], outShift.Scores[2], 1e-6)
}

func TestScoreTrialSilentTest(t *testing.T) {
	cands := candidateTracks(t)
	silent, err := ComputeBandTrack(make([]float64, MinSpeechSamples), SampleRate)
	require.NoError(t, err)

	out, err := ScoreTrial(Trial{Candidates: cands, Test: silent, Target: 3})
	require.NoError(t, err)
	// All correlations are neutral, all scores tie at zero, the lowest
	// index wins deterministically.
	assert.Equal(t, 0, out.Selected)
	assert.False(t, out.Correct)
	for _, s := range out.Scores {
		assert.Zero(t, s)
	}
}

func TestScoreTrialInvalidInput(t *testing.T) {
	cands := candidateTracks(t)
	test := cands[0]
	var inv *InvalidInputError

	_, err := ScoreTrial(Trial{Candidates: cands, Test: test, Target: NumWords})
	require.Error(t, err)
	assert.ErrorAs(t, err, &inv)

	_, err = ScoreTrial(Trial{Candidates: cands, Test: nil, Target: 0})
	require.Error(t, err)
	assert.ErrorAs(t, err, &inv)

	bad := cands
	bad[4] = nil
	_, err = ScoreTrial(Trial{Candidates: bad, Test: test, Target: 0})
	require.Error(t, err)
	assert.ErrorAs(t, err, &inv)
}

func TestScoreTrialUnalignable(t *testing.T) {
	// Silent candidates cannot be aligned to a non-silent test: every
	// pair is marked unalignable and the trial fails.
	silent, err := ComputeBandTrack(make([]float64, MinSpeechSamples), SampleRate)
	require.NoError(t, err)
	var cands [NumWords]*spectrum.Track
	for i := range cands {
		cands[i] = silent
	}
	test, err := ComputeBandTrack(synthWord(1300), SampleRate)
	require.NoError(t, err)

	_, err = ScoreTrial(Trial{ID: "F1_b1_w1.wav", Candidates: cands, Test: test, Target: 0})
	require.Error(t, err)
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "F1_b1_w1.wav")
}

func TestProcessTrialsParallel(t *testing.T) {
	cands := candidateTracks(t)
	trials := make([]Trial, 12)
	for i := range trials {
		word := i % NumWords
		test, err := ComputeBandTrack(PadSpeech(audio.Attenuate(synthWord(wordList[word]), 0.8)), SampleRate)
		require.NoError(t, err)
		trials[i] = Trial{Candidates: cands, Test: test, Target: word}
	}

	results := ProcessTrials(context.Background(), trials, 4)
	require.Len(t, results, len(trials))

	var agg Aggregator
	for i, r := range results {
		require.NoError(t, r.Err, "trial %d", i)
		assert.Equal(t, i, r.Index)
		agg.Add(r.Outcome)
	}
	rate := agg.Rate()
	assert.True(t, rate.Defined)
	assert.InDelta(t, 1.0, rate.Value, 1e-12)
}

func TestProcessTrialsCancelled(t *testing.T) {
	cands := candidateTracks(t)
	test, err := ComputeBandTrack(synthWord(wordList[0]), SampleRate)
	require.NoError(t, err)
	trials := make([]Trial, 4)
	for i := range trials {
		trials[i] = Trial{Candidates: cands, Test: test, Target: 0}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := ProcessTrials(ctx, trials, 1)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestPadSpeech(t *testing.T) {
	short := []float64{0.5}
	padded := PadSpeech(short)
	require.Len(t, padded, MinSpeechSamples)
	assert.Equal(t, 0.5, padded[0])
	assert.Zero(t, padded[1])

	long := make([]float64, MinSpeechSamples+1)
	assert.Equal(t, MinSpeechSamples+1, len(PadSpeech(long)))
}
