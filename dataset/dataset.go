// Package dataset loads MRT reference recordings into band track
// templates. Reference WAV files are named like "F1_b23_w4.wav"
// (talker, batch, word); the store serves the six-candidate group for
// any file number.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	abcmrt "github.com/ieee0824/abcmrt-go"
	"github.com/ieee0824/abcmrt-go/audio"
	"github.com/ieee0824/abcmrt-go/spectrum"
)

// Store holds reference band tracks keyed by MRT file number. A Store
// is immutable after Load and safe for concurrent readers.
type Store struct {
	tracks map[int]*spectrum.Track
}

// Load walks dir for reference WAV files, converts each to 48 kHz and
// computes its band track. Files whose names carry no MRT file number
// are skipped with a warning. Loading is logged at debug level per
// file and info level per directory.
func Load(dir string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read template dir: %w", err)
	}

	s := &Store{tracks: make(map[int]*spectrum.Track)}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}
		num, ok := abcmrt.FileNumber(e.Name())
		if !ok {
			log.WithField("file", e.Name()).Warn("no MRT file number in name, skipping")
			continue
		}

		path := filepath.Join(dir, e.Name())
		samples, header, err := audio.ReadWAVFile(path)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", e.Name(), err)
		}
		track, err := abcmrt.ComputeBandTrack(samples, int(header.SampleRate))
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", e.Name(), err)
		}
		if track.Frames() == 0 {
			return nil, fmt.Errorf("dataset: %s: template shorter than one analysis window", e.Name())
		}
		s.tracks[num] = track
		log.WithFields(logrus.Fields{"file": e.Name(), "num": num, "frames": track.Frames()}).
			Debug("template loaded")
	}

	log.WithFields(logrus.Fields{"dir": dir, "templates": len(s.tracks)}).Info("templates loaded")
	return s, nil
}

// Len returns the number of loaded templates.
func (s *Store) Len() int {
	return len(s.tracks)
}

// Track returns the template for one file number, if loaded.
func (s *Store) Track(num int) (*spectrum.Track, bool) {
	t, ok := s.tracks[num]
	return t, ok
}

// Group returns the six-candidate group containing fileNum, in word
// order. All six templates must be loaded.
func (s *Store) Group(fileNum int) ([abcmrt.NumWords]*spectrum.Track, error) {
	var group [abcmrt.NumWords]*spectrum.Track
	if fileNum < 1 || fileNum > abcmrt.NumFiles {
		return group, fmt.Errorf("dataset: file number %d out of range", fileNum)
	}
	start := abcmrt.GroupStart(fileNum)
	for w := 0; w < abcmrt.NumWords; w++ {
		t, ok := s.tracks[start+w]
		if !ok {
			name, _ := abcmrt.NumberToFile(start + w)
			return group, fmt.Errorf("dataset: missing template %s for group of %d", name, fileNum)
		}
		group[w] = t
	}
	return group, nil
}
