package abcmrt

import (
	"context"
	"math"

	"github.com/ieee0824/abcmrt-go/align"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// TemplateSource serves reference band tracks by MRT file number.
// Group returns the six-candidate group containing fileNum, in word
// order.
type TemplateSource interface {
	Group(fileNum int) ([NumWords]*spectrum.Track, error)
}

// Session scores whole clips against a set of reference templates,
// the high-level entry point for running an intelligibility test.
type Session struct {
	Templates TemplateSource
	Align     align.Config
	Workers   int // parallel clips; <= 0 means unbounded
}

// ClipResult is the outcome of one clip in a Session run.
type ClipResult struct {
	FileNum int
	Success float64 // 1 for correct, 0 otherwise; NaN when Err is set
	Outcome *Outcome
	Err     error
}

// Process scores each clip against the candidate group named by its
// file number and returns the guessing-corrected success rate over all
// scored clips. Clips failing the speech activity gate score 0 without
// running recognition; clips with errors are excluded from the rate
// and reported in their ClipResult. Clips and fileNums must have equal
// length.
func (s *Session) Process(ctx context.Context, clips [][]float64, fileNums []int) (SuccessRate, []ClipResult, error) {
	if len(clips) != len(fileNums) {
		return SuccessRate{}, nil, invalidInput("Process", "%d clips but %d file numbers", len(clips), len(fileNums))
	}

	results := make([]ClipResult, len(clips))
	trials := make([]Trial, 0, len(clips))
	trialClip := make([]int, 0, len(clips))

	for i, clip := range clips {
		num := fileNums[i]
		results[i] = ClipResult{FileNum: num, Success: math.NaN()}

		if num < 1 || num > NumFiles {
			results[i].Err = invalidInput("Process", "file number %d out of range 1-%d", num, NumFiles)
			continue
		}
		if len(clip) == 0 {
			results[i].Err = invalidInput("Process", "empty clip for file %d", num)
			continue
		}

		clip = PadSpeech(clip)
		if !DetectSpeech(clip) {
			results[i].Success = 0
			continue
		}

		candidates, err := s.Templates.Group(num)
		if err != nil {
			results[i].Err = err
			continue
		}
		name, _ := NumberToFile(num)
		trials = append(trials, Trial{
			ID:         name,
			Candidates: candidates,
			Test:       spectrum.Compute(clip),
			Target:     TargetIndex(num),
		})
		trialClip = append(trialClip, i)
	}

	for _, r := range processTrials(ctx, trials, s.Align, s.Workers) {
		i := trialClip[r.Index]
		if r.Err != nil {
			results[i].Err = r.Err
			continue
		}
		out := r.Outcome
		results[i].Outcome = &out
		if out.Correct {
			results[i].Success = 1
		} else {
			results[i].Success = 0
		}
	}

	var agg Aggregator
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		agg.Add(Outcome{Correct: r.Success == 1})
	}
	return agg.Rate(), results, ctx.Err()
}
