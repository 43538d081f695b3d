package input

import (
	"bufio"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Press
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Press{{Key: KeyUp}, {Key: KeyDown}, {Key: KeyRight}, {Key: KeyLeft}}},
		{"letters", "wasd", []Press{{Key: KeyUp}, {Key: KeyLeft}, {Key: KeyDown}, {Key: KeyRight}}},
		{"digits", "15", []Press{{Key: KeyDigit, Digit: 1}, {Key: KeyDigit, Digit: 5}}},
		{"confirm", " \r\n", []Press{{Key: KeyConfirm}, {Key: KeyConfirm}, {Key: KeyConfirm}}},
		{"back", "\x7f\b", []Press{{Key: KeyBack}, {Key: KeyBack}}},
		{"lone escape", "\x1b", []Press{{Key: KeyEscape}}},
		{"escape then letter", "\x1bm", []Press{{Key: KeyEscape}, {Key: KeyMode}}},
		{"quit keys", "q\x03", []Press{{Key: KeyQuit}, {Key: KeyQuit}}},
		{"unknown bytes", "zx!", nil},
		{"unknown csi", "\x1b[Z", []Press{{Key: KeyEscape}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadInputReportsClosedStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("1")))

	var presses []Press
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		presses = append(presses, in.Presses...)
		if in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !slices.Equal(presses, []Press{{Key: KeyDigit, Digit: 1}}) {
		t.Errorf("presses = %v, want [digit 1]", presses)
	}
	if !ReadInput(s).Closed {
		t.Error("stream not reported closed after EOF")
	}
}

func TestReadInputJoinsSplitArrows(t *testing.T) {
	tests := []struct {
		name   string
		frames []string
		want   [][]Press
	}{
		{"esc then rest", []string{"\x1b", "[A"}, [][]Press{nil, {{Key: KeyUp}}}},
		{"esc bracket then code", []string{"w\x1b[", "D"}, [][]Press{{{Key: KeyUp}}, {{Key: KeyLeft}}}},
		{"lone escape after quiet frame", []string{"\x1b", ""}, [][]Press{nil, {{Key: KeyEscape}}}},
		{"escape then letter", []string{"\x1b", "m"}, [][]Press{nil, {{Key: KeyEscape}, {Key: KeyMode}}}},
		{"double escape", []string{"\x1b\x1b", "", ""}, [][]Press{{{Key: KeyEscape}}, {{Key: KeyEscape}}, nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{ch: make(chan byte, 16)}
			for i, frame := range tt.frames {
				for _, b := range []byte(frame) {
					s.ch <- b
				}
				if got := ReadInput(s).Presses; !slices.Equal(got, tt.want[i]) {
					t.Errorf("frame %d: presses = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestReadInputFlushesEscapeOnClose(t *testing.T) {
	s := &Stream{ch: make(chan byte, 4)}
	s.ch <- '\x1b'
	close(s.ch)

	in := ReadInput(s)
	if !in.Closed {
		t.Fatal("stream not reported closed")
	}
	if !slices.Equal(in.Presses, []Press{{Key: KeyEscape}}) {
		t.Errorf("presses = %v, want [escape]", in.Presses)
	}
}
