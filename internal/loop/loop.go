// Package loop drives the game: it reads keys, ticks the game at the rate
// the current screen asks for and redraws every frame.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
)

// Options configures the loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
}

// Run starts the main loop with the standard Input → Update → Draw cycle.
// It returns when the game stops running.
func Run(r *bufio.Reader, w io.Writer, g *game.Game, opts Options) error {
	state := newState(r, w, g, opts)

	state.writer.HideCursor()
	state.writer.ClearScreen()
	if err := state.writer.Flush(); err != nil {
		return err
	}
	defer func() {
		state.writer.ClearScreen()
		state.writer.ShowCursor()
		_ = state.writer.Flush()
	}()

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if state.TickDue(frameStart) {
			state.Tick(frameStart)
		}
		if !state.Running {
			break
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	state.logger.Info("loop stopped")
	return nil
}

func newState(r *bufio.Reader, w io.Writer, g *game.Game, opts Options) *State {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	grid := g.Snapshot().Grid
	return &State{
		Game:         g,
		Running:      g.Running(),
		stream:       input.StartStream(r),
		canvas:       draw.NewCanvas(grid.Cols(), grid.Rows()),
		writer:       draw.NewChunkWriter(w),
		termSizeFunc: termSizeFunc,
		logger:       logger.With("component", "loop"),
	}
}

// processInput drains the key stream into pending events. A closed stream
// counts as a quit request.
func processInput(state *State) {
	inp := input.ReadInput(state.stream)
	state.Queue(Events(inp.Presses)...)
	if inp.Closed {
		state.logger.Debug("input closed")
		state.Queue(game.Key(game.EventQuit))
	}
}

// drawFrame renders the current snapshot.
func drawFrame(state *State) error {
	termWidth, termHeight, err := state.termSizeFunc()
	if err != nil {
		return err
	}

	cw := state.writer
	cw.ClearScreen()
	drawScreen(cw, state.canvas, state.Game.Snapshot(), termWidth, termHeight)
	return cw.Flush()
}
