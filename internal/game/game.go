// Package game owns the state machine and the per-tick round simulation.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/achievement"
	"github.com/tomz197/snake/internal/audio"
	"github.com/tomz197/snake/internal/clock"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/store"
)

// ScoreStore persists the leaderboard.
type ScoreStore interface {
	Load() ([]int, error)
	Save(scores []int) error
}

// SettingsStore persists the player settings.
type SettingsStore interface {
	Load() (config.Settings, error)
	Save(s config.Settings) error
}

// Options wires a Game to its collaborators. Nil fields fall back to
// in-memory or silent defaults.
type Options struct {
	Scores   ScoreStore
	Settings SettingsStore
	Audio    audio.Sink
	Clock    clock.Clock
	Rand     object.Rand
	Logger   *log.Logger
}

// Game is the single owner of all mutable game state.
type Game struct {
	state    State
	settings config.Settings
	grid     object.Grid
	scores   []int
	tracker  *achievement.Tracker
	round    *Round
	running  bool

	lastTermination Termination
	lastHighScore   bool
	endedAt         time.Time

	scoreStore    ScoreStore
	settingsStore SettingsStore
	audio         audio.Sink
	clock         clock.Clock
	rng           object.Rand
	logger        *log.Logger
}

// New creates a game on the menu screen. Settings and scores are loaded
// once; failures are logged and replaced by defaults.
func New(opts Options) *Game {
	g := &Game{
		state:         StateMenu,
		tracker:       achievement.NewTracker(),
		running:       true,
		scoreStore:    opts.Scores,
		settingsStore: opts.Settings,
		audio:         opts.Audio,
		clock:         opts.Clock,
		rng:           opts.Rand,
		logger:        opts.Logger,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.logger = g.logger.With("component", "game")
	if g.scoreStore == nil {
		g.scoreStore = &memoryScores{}
	}
	if g.settingsStore == nil {
		g.settingsStore = &memorySettings{s: config.DefaultSettings()}
	}
	if g.audio == nil {
		g.audio = audio.Nop{}
	}
	if g.clock == nil {
		g.clock = clock.NewReal()
	}
	if g.rng == nil {
		g.rng = object.NewRand(uint64(time.Now().UnixNano()))
	}

	settings, err := g.settingsStore.Load()
	if err != nil {
		g.logger.Warn("settings unavailable, using defaults", "err", err)
		settings = config.DefaultSettings()
	}
	g.settings = settings
	g.grid = object.NewGrid(settings.Width, settings.Height, settings.Cell)

	scores, err := g.scoreStore.Load()
	if err != nil {
		g.logger.Warn("leaderboard unavailable, starting empty", "err", err)
		scores = nil
	}
	g.scores = scores

	g.logger.Info("game ready", "speed", settings.Speed, "mode", settings.Mode, "scores", len(scores))
	return g
}

// Running reports whether the game wants to keep going.
func (g *Game) Running() bool { return g.running }

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Settings returns the current settings.
func (g *Game) Settings() config.Settings { return g.settings }

// Round returns the current round, or nil outside a round.
func (g *Game) Round() *Round { return g.round }

// Scores returns a copy of the leaderboard.
func (g *Game) Scores() []int { return append([]int(nil), g.scores...) }

// Achievements returns the process-wide achievement tracker.
func (g *Game) Achievements() *achievement.Tracker { return g.tracker }

// TickInterval returns how long to wait between ticks in the current state:
// one step per Speed while playing, the frame rate elsewhere.
func (g *Game) TickInterval() time.Duration {
	if g.state == StatePlaying {
		return time.Second / time.Duration(config.ClampSpeed(g.settings.Speed))
	}
	fps := g.settings.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Tick applies the events in order, then advances the round when playing.
// It returns false once the game has been asked to quit.
func (g *Game) Tick(events []Event) bool {
	for _, ev := range events {
		if !g.running {
			break
		}
		g.handle(ev)
	}
	if g.running && g.state == StatePlaying {
		g.stepRound()
	}
	return g.running
}

// stepRound runs one simulation step and reacts to its outcome.
func (g *Game) stepRound() {
	now := g.clock.Now()
	out := g.round.Step(now)

	if out.Ate {
		g.notify(audio.CueEaten)
	}
	if out.Collected != nil {
		g.logger.Debug("power-up collected", "round", g.round.ID, "kind", out.Collected.Kind)
	}
	for _, k := range out.Unlocked {
		g.logger.Info("achievement unlocked", "round", g.round.ID, "achievement", k.Name())
	}

	switch out.Termination {
	case TerminationDeath:
		g.notify(audio.CueDied)
		g.endRound(out.Termination, now)
	case TerminationTimeExpired:
		g.endRound(out.Termination, now)
	}
}

// endRound saves the score and moves to the game over screen.
func (g *Game) endRound(t Termination, now time.Time) {
	g.logger.Info("round over",
		"round", g.round.ID,
		"reason", t,
		"score", g.round.Score,
		"length", g.round.Snake.Target,
		"elapsed", g.round.Elapsed(now).Round(time.Millisecond),
	)
	g.lastTermination = t
	g.endedAt = now
	g.recordScore(g.round.Score)
	g.state = StateGameOver
}

// recordScore inserts score into the leaderboard and persists it.
func (g *Game) recordScore(score int) {
	high := store.IsHighScore(g.scores, score)
	g.scores = store.InsertScore(g.scores, score)
	if err := g.scoreStore.Save(g.scores); err != nil {
		g.logger.Warn("leaderboard not saved", "err", err)
	}
	g.lastHighScore = high
	if high {
		g.notify(audio.CueHighScore)
	}
}

// resetRound starts a fresh round in the configured mode.
func (g *Game) resetRound() {
	g.round = NewRound(g.settings.Mode, g.grid, g.rng, g.clock.Now(), g.tracker)
	g.lastTermination = TerminationNone
	g.lastHighScore = false
	g.logger.Info("round started", "round", g.round.ID, "mode", g.settings.Mode, "speed", g.settings.Speed)
}

// notify plays a cue; audio failures never reach the simulation.
func (g *Game) notify(c audio.Cue) {
	if err := g.audio.Play(c); err != nil {
		g.logger.Debug("cue not played", "cue", c, "err", err)
	}
}

// quit stops the game loop.
func (g *Game) quit() {
	g.logger.Info("quit requested", "state", g.state)
	g.running = false
}

// memoryScores keeps the leaderboard in memory when no store is wired.
type memoryScores struct{ scores []int }

func (m *memoryScores) Load() ([]int, error) {
	return append([]int(nil), m.scores...), nil
}

func (m *memoryScores) Save(scores []int) error {
	m.scores = append([]int(nil), scores...)
	return nil
}

// memorySettings keeps settings in memory when no store is wired.
type memorySettings struct{ s config.Settings }

func (m *memorySettings) Load() (config.Settings, error) { return m.s, nil }

func (m *memorySettings) Save(s config.Settings) error {
	m.s = s
	return nil
}
