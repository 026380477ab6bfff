package abcmrt

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/abcmrt-go/audio"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// fakeTemplates serves one six-word group for batch 1 of talker F1
// (file numbers 1..6).
type fakeTemplates struct {
	group [NumWords]*spectrum.Track
}

func (f *fakeTemplates) Group(fileNum int) ([NumWords]*spectrum.Track, error) {
	if GroupStart(fileNum) != 1 {
		return [NumWords]*spectrum.Track{}, fmt.Errorf("no templates for file %d", fileNum)
	}
	return f.group, nil
}

func TestSessionProcess(t *testing.T) {
	s := &Session{
		Templates: &fakeTemplates{group: candidateTracks(t)},
		Workers:   2,
	}

	clips := [][]float64{
		audio.Attenuate(synthWord(wordList[0]), 0.6), // word 1, recognizable
		synthWord(wordList[3]),                       // word 4, clean
		make([]float64, MinSpeechSamples),            // silence: gate scores 0
	}
	fileNums := []int{1, 4, 2}

	rate, results, err := s.Process(context.Background(), clips, fileNums)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, 1.0, results[0].Success)
	require.NotNil(t, results[0].Outcome)
	assert.Equal(t, 0, results[0].Outcome.Selected)

	require.NoError(t, results[1].Err)
	assert.Equal(t, 1.0, results[1].Success)

	// The silent clip never reaches recognition.
	require.NoError(t, results[2].Err)
	assert.Equal(t, 0.0, results[2].Success)
	assert.Nil(t, results[2].Outcome)

	// raw 2/3 correct, corrected by the 6-alternative formula
	assert.True(t, rate.Defined)
	assert.Equal(t, 3, rate.Trials)
	assert.InDelta(t, GuessCorrection(2.0/3), rate.Value, 1e-12)
}

func TestSessionProcessBadInputs(t *testing.T) {
	s := &Session{Templates: &fakeTemplates{group: candidateTracks(t)}}

	_, _, err := s.Process(context.Background(), [][]float64{{0.1}}, []int{1, 2})
	var inv *InvalidInputError
	require.ErrorAs(t, err, &inv)

	rate, results, err := s.Process(context.Background(),
		[][]float64{nil, synthWord(900)}, []int{1, NumFiles + 5})
	require.NoError(t, err)
	assert.Error(t, results[0].Err) // empty clip
	assert.Error(t, results[1].Err) // file number out of range
	assert.True(t, math.IsNaN(results[0].Success))
	assert.False(t, rate.Defined, "no scorable clips")
}

func TestSessionProcessMissingTemplates(t *testing.T) {
	s := &Session{Templates: &fakeTemplates{group: candidateTracks(t)}}
	_, results, err := s.Process(context.Background(),
		[][]float64{synthWord(900)}, []int{301}) // talker F3, not served
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0].Err, "no templates")
}
