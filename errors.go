package abcmrt

import "fmt"

// InvalidInputError reports malformed or shape-mismatched input. It is
// always a caller bug; retrying with the same input cannot succeed.
type InvalidInputError struct {
	Op     string // operation that rejected the input
	Reason string
	Band   int // offending band index, or -1
}

func (e *InvalidInputError) Error() string {
	if e.Band >= 0 {
		return fmt.Sprintf("abcmrt: %s: invalid input: %s (band %d)", e.Op, e.Reason, e.Band)
	}
	return fmt.Sprintf("abcmrt: %s: invalid input: %s", e.Op, e.Reason)
}

func invalidInput(op, format string, args ...any) error {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...), Band: -1}
}

// AlignmentError reports that a test track could not be aligned to any
// candidate within the configured lag window. The trial may simply be
// unintelligible audio rather than a software fault; callers typically
// exclude or flag the trial and keep aggregating.
type AlignmentError struct {
	Trial string // caller-supplied trial identity, may be empty
}

func (e *AlignmentError) Error() string {
	if e.Trial == "" {
		return "abcmrt: no candidate could be aligned within the lag window"
	}
	return fmt.Sprintf("abcmrt: trial %s: no candidate could be aligned within the lag window", e.Trial)
}
