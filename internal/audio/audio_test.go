package audio

import "testing"

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	for _, c := range Cues() {
		if err := s.Play(c); err != nil {
			t.Errorf("Nop.Play(%s) = %v", c, err)
		}
	}
}

func TestCueNames(t *testing.T) {
	if CueHighScore.String() != "highscore" || Cue(42).String() != "unknown" {
		t.Error("unexpected cue names")
	}
}
