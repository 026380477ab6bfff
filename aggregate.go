package abcmrt

// NumWords is the number of alternatives in one MRT trial.
const NumWords = 6

// chance is the expected success rate of pure guessing.
const chance = 1.0 / NumWords

// SuccessRate is a guessing-corrected intelligibility estimate.
// Defined is false when no trials have been aggregated; the zero value
// is the undefined rate.
type SuccessRate struct {
	Value   float64
	Trials  int
	Defined bool
}

// GuessCorrection removes the contribution of pure chance from a raw
// proportion correct: a raw score of 1/6 maps to 0 and 1 stays 1. The
// result is clamped to [0, 1].
func GuessCorrection(raw float64) float64 {
	v := (raw - chance) / (1 - chance)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Aggregator accumulates trial outcomes into a success rate. It
// supports streaming: outcomes can be added one at a time and a valid
// partial rate read at any point. The zero value is ready to use.
// Aggregator is not safe for concurrent use.
type Aggregator struct {
	trials  int
	correct int
}

// Add records one outcome.
func (a *Aggregator) Add(o Outcome) {
	a.trials++
	if o.Correct {
		a.correct++
	}
}

// Trials returns the number of outcomes added so far.
func (a *Aggregator) Trials() int {
	return a.trials
}

// Rate returns the guessing-corrected success rate over the outcomes
// added so far. With no outcomes the result is undefined rather than a
// division by zero.
func (a *Aggregator) Rate() SuccessRate {
	if a.trials == 0 {
		return SuccessRate{}
	}
	raw := float64(a.correct) / float64(a.trials)
	return SuccessRate{
		Value:   GuessCorrection(raw),
		Trials:  a.trials,
		Defined: true,
	}
}

// Aggregate is a convenience wrapper that aggregates a complete slice
// of outcomes. An empty slice yields the undefined rate.
func Aggregate(outcomes []Outcome) SuccessRate {
	var a Aggregator
	for _, o := range outcomes {
		a.Add(o)
	}
	return a.Rate()
}
