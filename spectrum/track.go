package spectrum

import "github.com/ieee0824/abcmrt-go/internal/mathutil"

// Track is a time-frequency representation of one recording: NumBands
// rows of per-frame band magnitudes. A Track is created once per
// recording and never mutated afterwards.
type Track struct {
	data mathutil.Mat // [NumBands][frames]
}

// NewTrack allocates a zeroed track with the given frame count.
func NewTrack(frames int) *Track {
	return &Track{data: mathutil.NewMat(NumBands, frames)}
}

// Bands returns the number of band rows (always NumBands for tracks
// produced by this package).
func (t *Track) Bands() int {
	return len(t.data)
}

// Frames returns the number of time frames.
func (t *Track) Frames() int {
	if len(t.data) == 0 {
		return 0
	}
	return len(t.data[0])
}

// Row returns the magnitude trajectory of band b. The returned slice
// aliases the track's storage and must not be modified.
func (t *Track) Row(b int) []float64 {
	return t.data[b]
}

// BandEnergy returns the summed magnitude of band b over frames
// [start, start+n). Frames past the end of the track contribute zero.
func (t *Track) BandEnergy(b, start, n int) float64 {
	row := t.data[b]
	end := start + n
	if end > len(row) {
		end = len(row)
	}
	if start < 0 {
		start = 0
	}
	return mathutil.SumVec(row[start:end])
}

// PadFrames returns a track extended with zero frames at the tail so it
// has at least n frames. The receiver is returned unchanged if it is
// already long enough.
func (t *Track) PadFrames(n int) *Track {
	if t.Frames() >= n {
		return t
	}
	out := NewTrack(n)
	for b := 0; b < NumBands; b++ {
		copy(out.data[b], t.data[b])
	}
	return out
}
