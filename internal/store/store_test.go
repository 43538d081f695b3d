package store

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/config"
	"golang.org/x/exp/rand"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestInsertScore(t *testing.T) {
	got := InsertScore([]int{50, 30, 10}, 40)
	if want := []int{50, 40, 30, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("InsertScore = %v, want %v", got, want)
	}

	scores := []int{50, 40, 30, 10}
	for s := 100; s <= 110; s++ {
		scores = InsertScore(scores, s)
	}
	want := []int{110, 109, 108, 107, 106, 105, 104, 103, 102, 101}
	if !reflect.DeepEqual(scores, want) {
		t.Errorf("after 11 higher scores = %v, want %v", scores, want)
	}
}

func TestInsertScoreDoesNotAlias(t *testing.T) {
	in := []int{30, 20}
	_ = InsertScore(in, 40)
	if !reflect.DeepEqual(in, []int{30, 20}) {
		t.Errorf("input modified: %v", in)
	}
}

func TestInsertScoreKeepsTrueTopTen(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var all, ledger []int
	for i := 0; i < 200; i++ {
		s := rng.Intn(1000)
		all = append(all, s)
		ledger = InsertScore(ledger, s)

		if len(ledger) > MaxScores {
			t.Fatalf("ledger grew to %d", len(ledger))
		}
		if !sort.SliceIsSorted(ledger, func(a, b int) bool { return ledger[a] > ledger[b] }) {
			t.Fatalf("ledger not descending: %v", ledger)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(all)))
	if !reflect.DeepEqual(ledger, all[:MaxScores]) {
		t.Errorf("ledger %v, want top ten %v", ledger, all[:MaxScores])
	}
}

func TestInsertScoreDuplicates(t *testing.T) {
	got := InsertScore(InsertScore(nil, 20), 20)
	if !reflect.DeepEqual(got, []int{20, 20}) {
		t.Errorf("duplicates = %v, want [20 20]", got)
	}
}

func TestIsHighScore(t *testing.T) {
	if !IsHighScore(nil, 0) {
		t.Error("empty ledger should make any score a high score")
	}
	if !IsHighScore([]int{50, 30}, 60) {
		t.Error("60 should beat 50")
	}
	if IsHighScore([]int{50, 30}, 50) {
		t.Error("tying the best is not a high score")
	}
}

func TestScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scores.json")
	f := NewScoreFile(path, testLogger())

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("missing file loaded %v", got)
	}

	if err := f.Save([]int{50, 30, 10}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, []int{50, 30, 10}) {
		t.Errorf("Load = %v", got)
	}
}

func TestScoreFileNormalisesAndRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.json")
	f := NewScoreFile(path, testLogger())

	os.WriteFile(path, []byte("[1,2,3,4,5,6,7,8,9,10,11,12]"), 0o644)
	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}

	os.WriteFile(path, []byte(`{"not":"a list"}`), 0o644)
	got, err = f.Load()
	if err == nil {
		t.Error("expected error for malformed file")
	}
	if len(got) != 0 {
		t.Errorf("malformed file should load empty, got %v", got)
	}
}

func TestSettingsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	f := NewSettingsFile(path, config.DefaultSettings(), testLogger())

	s, err := f.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if s != config.DefaultSettings() {
		t.Errorf("missing file loaded %+v", s)
	}

	s.Speed = 22
	s.Mode = config.ModeObstacles
	s.Difficulty = "Hard"
	if err := f.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != s {
		t.Errorf("Load = %+v, want %+v", got, s)
	}
}

func TestSettingsFileClampsAndFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	f := NewSettingsFile(path, config.DefaultSettings(), testLogger())

	os.WriteFile(path, []byte(`{"speed": 99, "game_mode": "WARP"}`), 0o644)
	s, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Speed != config.MaxSpeed {
		t.Errorf("speed = %d, want clamped %d", s.Speed, config.MaxSpeed)
	}
	if s.Mode != config.ModeClassic {
		t.Errorf("mode = %v, want classic", s.Mode)
	}
	if s.Difficulty != config.DefaultDifficulty {
		t.Errorf("difficulty = %q, want default", s.Difficulty)
	}

	os.WriteFile(path, []byte("speed=20"), 0o644)
	s, err = f.Load()
	if err == nil {
		t.Error("expected error for malformed file")
	}
	if s != config.DefaultSettings() {
		t.Errorf("malformed file should load defaults, got %+v", s)
	}
}

func TestSettingsFileKeepsOriginalKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	f := NewSettingsFile(path, config.DefaultSettings(), testLogger())

	s := config.DefaultSettings()
	s.Mode = config.ModeTimeTrial
	if err := f.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"speed":15,"difficulty":"Normal","game_mode":"TIME_TRIAL"}`
	if string(data) != want {
		t.Errorf("file = %s, want %s", data, want)
	}
}
