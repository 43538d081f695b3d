package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/physics"
)

// drawPlaying draws the board and the status line above it.
func drawPlaying(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot, termWidth, termHeight int) {
	if !canvas.Fit(termWidth, termHeight) {
		need := fmt.Sprintf("Terminal too small: need %dx%d", canvas.TerminalWidth()+2, canvas.TerminalHeight()+3)
		draw.Centered(cw, termWidth, top(termHeight, 1), draw.AlertStyle.Render(need))
		return
	}

	fillBoard(canvas, snap)
	canvas.RenderBorder(cw)
	canvas.Render(cw)
	drawHUD(cw, canvas, snap)

	if snap.Heading == physics.None {
		hint := draw.DimStyle.Render("Press an arrow key to start")
		draw.Centered(cw, termWidth, canvas.OffsetRow()+canvas.TerminalHeight()+2, hint)
	}
}

// fillBoard paints the round onto the canvas. Later layers win.
func fillBoard(canvas *draw.Canvas, snap game.Snapshot) {
	canvas.Clear()
	cell := snap.Grid.Cell
	put := func(p physics.Point, v draw.Cell) {
		canvas.Set(p.X/cell, p.Y/cell, v)
	}

	for _, o := range snap.Obstacles {
		put(o, draw.CellObstacle)
	}
	put(snap.Food, draw.CellFood)
	if snap.Pending != nil {
		put(snap.Pending.Pos, draw.CellPowerUp)
	}
	for i, seg := range snap.Segments {
		if i == len(snap.Segments)-1 {
			put(seg, draw.CellHead)
		} else {
			put(seg, draw.CellBody)
		}
	}
}

// drawHUD writes score, mode and timers on the row above the board.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot) {
	row := canvas.OffsetRow() - 1
	left := canvas.OffsetCol()
	right := canvas.OffsetCol() + canvas.TerminalWidth() + 1

	cw.WriteAt(left, row, fmt.Sprintf("Score: %d", snap.Score))

	status := hudStatus(snap)
	cw.WriteAt(max(left, right-len(status)+1), row, status)
}

// hudStatus returns the right-hand status text: the countdown in Time
// Trial, otherwise the elapsed time, preceded by any active effects.
func hudStatus(snap game.Snapshot) string {
	var parts []string
	for _, e := range snap.Effects {
		parts = append(parts, fmt.Sprintf("%s %ds", e.Kind, seconds(e.Remaining)))
	}
	if snap.Mode == config.ModeTimeTrial {
		parts = append(parts, fmt.Sprintf("Time: %ds", int(snap.Remaining/time.Second)))
	} else {
		parts = append(parts, fmt.Sprintf("%s %ds", snap.Mode.Label(), int(snap.Elapsed/time.Second)))
	}
	return strings.Join(parts, "  ")
}

// seconds rounds a remaining duration up to whole seconds.
func seconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
