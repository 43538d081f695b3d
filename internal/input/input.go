// Package input turns the raw terminal byte stream into discrete key presses.
package input

import (
	"bufio"
)

// Key is a decoded key press.
type Key int

const (
	KeyNone    Key = iota // Unmapped byte
	KeyQuit               // q, Q or Ctrl-C
	KeyUp                 // Arrow up, w, i
	KeyDown               // Arrow down, s, k
	KeyLeft               // Arrow left, a, j
	KeyRight              // Arrow right, d, l
	KeyConfirm            // Space or Enter
	KeyBack               // Backspace or Delete
	KeyEscape             // Lone ESC
	KeyMode               // m, M
	KeyDigit              // 0-9, see Press.Digit
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyBack:
		return "back"
	case KeyEscape:
		return "escape"
	case KeyMode:
		return "mode"
	case KeyDigit:
		return "digit"
	default:
		return "none"
	}
}

// Press is one key press in arrival order.
type Press struct {
	Key   Key
	Digit int // Only set for KeyDigit
}

// Input holds the presses decoded during one frame.
type Input struct {
	Presses []Press
	Closed  bool   // The underlying reader hit EOF or an error
	Raw     []byte // Bytes drained this frame
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	partial []byte // ESC or ESC [ held back until the next drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking
// and decodes them into presses. A trailing ESC or ESC [ may be the start
// of an arrow key whose remaining bytes have not arrived yet, so it is held
// for one more drain. If nothing follows it, it is decoded as Escape.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	pending := append(s.partial, buf...)
	s.partial = nil
	if len(buf) > 0 && !s.closed {
		pending, s.partial = splitPartial(pending)
	}
	return Input{Presses: Decode(pending), Closed: s.closed, Raw: buf}
}

// splitPartial cuts an unfinished arrow key sequence off the end of buf.
func splitPartial(buf []byte) (complete, partial []byte) {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return buf[:n-1], append([]byte(nil), buf[n-1:]...)
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return buf[:n-2], append([]byte(nil), buf[n-2:]...)
	}
	return buf, nil
}

// Decode parses a chunk of terminal bytes. Arrow keys arrive as the CSI
// sequences ESC [ A-D; an ESC that does not start one is the Escape key.
func Decode(buf []byte) []Press {
	var presses []Press
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k := arrow(buf[i+2]); k != KeyNone {
				presses = append(presses, Press{Key: k})
				i += 2
				continue
			}
		}

		if p, ok := decodeByte(b); ok {
			presses = append(presses, p)
		}
	}
	return presses
}

func arrow(code byte) Key {
	switch code {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	default:
		return KeyNone
	}
}

// decodeByte maps a single byte to a key press.
func decodeByte(b byte) (Press, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return Press{Key: KeyQuit}, true
	case 'a', 'A', 'j', 'J':
		return Press{Key: KeyLeft}, true
	case 'd', 'D', 'l', 'L':
		return Press{Key: KeyRight}, true
	case 'w', 'W', 'i', 'I':
		return Press{Key: KeyUp}, true
	case 's', 'S', 'k', 'K':
		return Press{Key: KeyDown}, true
	case 'm', 'M':
		return Press{Key: KeyMode}, true
	case ' ', '\n', '\r':
		return Press{Key: KeyConfirm}, true
	case '\b', '\x7f':
		return Press{Key: KeyBack}, true
	case '\x1b':
		return Press{Key: KeyEscape}, true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return Press{Key: KeyDigit, Digit: int(b - '0')}, true
	}
	return Press{}, false
}
