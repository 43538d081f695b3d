// Package speaker plays audio cues through the system sound device.
package speaker

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/snake/internal/audio"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.75
)

// cueFiles maps cues to optional WAV assets in the sound directory.
var cueFiles = map[audio.Cue]string{
	audio.CueEaten:     "eat.wav",
	audio.CueDied:      "die.wav",
	audio.CueHighScore: "highscore.wav",
}

// Options configures a Player.
type Options struct {
	SoundDir string  // Directory with eat.wav, die.wav, highscore.wav; empty to synthesize
	Volume   float64 // Linear gain, 0 mutes; default 0.75
}

// Player plays cues through the system speaker.
type Player struct {
	mu     sync.Mutex
	cues   map[audio.Cue]*beep.Buffer
	volume float64
	logger *log.Logger
}

// New initializes the speaker and prepares a buffer per cue. Missing
// or unreadable WAV assets are replaced by synthesized tones. An error means
// the speaker is unusable and the caller should fall back to audio.Nop.
func New(opts Options, logger *log.Logger) (*Player, error) {
	logger = logger.With("component", "audio")

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	volume := opts.Volume
	if volume == 0 {
		volume = defaultVolume
	}

	p := &Player{
		cues:   make(map[audio.Cue]*beep.Buffer, len(cueFiles)),
		volume: volume,
		logger: logger,
	}
	for _, c := range audio.Cues() {
		p.cues[c] = loadCue(c, opts.SoundDir, logger)
	}
	return p, nil
}

// loadCue prefers the WAV asset and falls back to a synthesized tone.
func loadCue(c audio.Cue, dir string, logger *log.Logger) *beep.Buffer {
	if dir != "" {
		path := filepath.Join(dir, cueFiles[c])
		buf, err := decodeWAV(path)
		if err == nil {
			logger.Debug("sound loaded", "cue", c, "path", path)
			return buf
		}
		logger.Warn("sound file unavailable, using synthesized cue", "cue", c, "err", err)
	}
	return synthesize(c)
}

// decodeWAV reads a WAV file into a buffer at the player's sample rate.
func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// synthesize builds a short tone sequence for a cue.
func synthesize(c audio.Cue) *beep.Buffer {
	var notes []note
	switch c {
	case audio.CueEaten:
		notes = []note{{880, 60 * time.Millisecond}, {1320, 40 * time.Millisecond}}
	case audio.CueDied:
		notes = []note{{440, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {220, 300 * time.Millisecond}}
	case audio.CueHighScore:
		notes = []note{{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 250 * time.Millisecond}}
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		buf.Append(beep.Take(sampleRate.N(n.length), tone))
	}
	return buf
}

type note struct {
	freq   float64
	length time.Duration
}

// Play queues the cue on the speaker mixer and returns immediately.
func (p *Player) Play(c audio.Cue) error {
	p.mu.Lock()
	buf, ok := p.cues[c]
	volume := p.volume
	p.mu.Unlock()

	if !ok || buf.Len() == 0 {
		return fmt.Errorf("%w: %s", audio.ErrUnknownCue, c)
	}
	speaker.Play(withVolume(buf.Streamer(0, buf.Len()), volume))
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
	p.logger.Debug("speaker closed")
}

// withVolume applies a linear gain; math.Log2(0) is -Inf so 0 means silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

var _ audio.Sink = (*Player)(nil)
