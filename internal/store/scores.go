// Package store persists the leaderboard and the player settings as small
// JSON files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// MaxScores is the number of entries kept on the leaderboard.
const MaxScores = 10

// InsertScore adds score to scores and returns the list sorted descending
// and truncated to MaxScores. The input slice is not modified.
func InsertScore(scores []int, score int) []int {
	out := make([]int, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > MaxScores {
		out = out[:MaxScores]
	}
	return out
}

// IsHighScore reports whether score beats every entry in scores, or scores
// is empty.
func IsHighScore(scores []int, score int) bool {
	for _, s := range scores {
		if s >= score {
			return false
		}
	}
	return true
}

// ScoreFile stores the leaderboard as a JSON array of integers.
type ScoreFile struct {
	path   string
	logger *log.Logger
}

// NewScoreFile creates a store backed by path.
func NewScoreFile(path string, logger *log.Logger) *ScoreFile {
	return &ScoreFile{path: path, logger: logger.With("store", "scores")}
}

// Path returns the backing file path.
func (f *ScoreFile) Path() string { return f.path }

// Load reads the leaderboard. A missing file is an empty leaderboard, not an
// error. The result is normalised: sorted descending, at most MaxScores.
func (f *ScoreFile) Load() ([]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("no leaderboard yet", "path", f.path)
		return []int{}, nil
	}
	if err != nil {
		return []int{}, fmt.Errorf("read scores: %w", err)
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		return []int{}, fmt.Errorf("decode scores %s: %w", f.path, err)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > MaxScores {
		scores = scores[:MaxScores]
	}
	if scores == nil {
		scores = []int{}
	}
	return scores, nil
}

// Save overwrites the leaderboard with scores.
func (f *ScoreFile) Save(scores []int) error {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := writeFile(f.path, data); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	f.logger.Debug("leaderboard saved", "path", f.path, "entries", len(scores))
	return nil
}

// writeFile writes data via a temporary file and rename so a crash never
// leaves a half-written file behind.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
