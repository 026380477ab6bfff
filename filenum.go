package abcmrt

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Talkers lists the MRT talkers in file-number order.
var Talkers = [4]string{"F1", "F3", "M3", "M4"}

const (
	numBatches = 50
	// NumFiles is the total number of talker x keyword recordings.
	NumFiles = len(Talkers) * numBatches * NumWords
)

var fileNamePattern = regexp.MustCompile(`(?P<talker>[MF]\d)_b(?P<batch>\d+)_w(?P<word>\d+)`)

// FileNumber derives the 1-based MRT file number from a recording file
// name. Directory components are ignored; the base name must contain
// the string "<talker>_b<batch>_w<word>" with a talker of F1, F3, M3
// or M4. The second return value is false when no number could be
// determined.
func FileNumber(name string) (int, bool) {
	m := fileNamePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, false
	}
	talker := -1
	for i, t := range Talkers {
		if t == m[1] {
			talker = i
			break
		}
	}
	if talker < 0 {
		return 0, false
	}
	var batch, word int
	fmt.Sscanf(m[2], "%d", &batch)
	fmt.Sscanf(m[3], "%d", &word)
	if batch < 1 || batch > numBatches || word < 1 || word > NumWords {
		return 0, false
	}
	return talker*numBatches*NumWords + (batch-1)*NumWords + word, true
}

// NumberToFile inverts FileNumber, returning the canonical WAV file
// name for a file number in [1, NumFiles].
func NumberToFile(num int) (string, error) {
	if num < 1 || num > NumFiles {
		return "", invalidInput("NumberToFile", "file number %d out of range 1-%d", num, NumFiles)
	}
	perTalker := numBatches * NumWords
	talker := (num - 1) / perTalker
	offset := (num - 1) % perTalker
	batch := offset/NumWords + 1
	word := (num-1)%NumWords + 1
	return fmt.Sprintf("%s_b%d_w%d.wav", Talkers[talker], batch, word), nil
}

// TargetIndex returns the 0-based index of the spoken word among the
// six candidates of its batch, for a valid file number.
func TargetIndex(num int) int {
	return (num - 1) % NumWords
}

// GroupStart returns the file number of the first word in the
// six-word candidate group containing num.
func GroupStart(num int) int {
	return (num-1)/NumWords*NumWords + 1
}
