package loop

import (
	"fmt"

	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
)

// drawScreen dispatches on the current state.
func drawScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, snap game.Snapshot, termWidth, termHeight int) {
	switch snap.State {
	case game.StateMenu:
		drawMenuScreen(cw, termWidth, termHeight)
	case game.StateModeSelect:
		drawModeSelectScreen(cw, termWidth, termHeight)
	case game.StatePlaying:
		drawPlaying(cw, canvas, snap, termWidth, termHeight)
	case game.StateSettings:
		drawSettingsScreen(cw, snap, termWidth, termHeight)
	case game.StateLeaderboard:
		drawLeaderboardScreen(cw, snap, termWidth, termHeight)
	case game.StateAchievements:
		drawAchievementsScreen(cw, snap, termWidth, termHeight)
	case game.StateGameOver:
		drawGameOverScreen(cw, snap, termWidth, termHeight)
	}
}

// top returns the first row of a block of n lines centered vertically.
func top(termHeight, n int) int {
	return max(1, (termHeight-n)/2+1)
}

// drawMenuScreen draws the title menu.
func drawMenuScreen(cw *draw.ChunkWriter, termWidth, termHeight int) {
	row := top(termHeight, 9)
	draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("S N A K E"))
	draw.Block(cw, termWidth, row+2,
		"1. Play Game",
		"2. Settings",
		"3. Leaderboard",
		"4. Achievements",
		"5. Quit",
	)
	draw.Centered(cw, termWidth, row+8, draw.DimStyle.Render("Arrows or WASD to steer, ESC to leave a round, Q to quit"))
}

// drawModeSelectScreen draws the mode picker.
func drawModeSelectScreen(cw *draw.ChunkWriter, termWidth, termHeight int) {
	row := top(termHeight, 6)
	draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("SELECT GAME MODE"))
	draw.Block(cw, termWidth, row+2,
		"1. Classic Mode",
		"2. Time Trial",
		"3. Obstacles",
		"4. Back to Menu",
	)
}

// drawSettingsScreen draws the speed and mode preferences.
func drawSettingsScreen(cw *draw.ChunkWriter, snap game.Snapshot, termWidth, termHeight int) {
	row := top(termHeight, 8)
	draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("SETTINGS"))
	draw.Lines(cw, termWidth, row+2,
		fmt.Sprintf("Snake Speed: %s", draw.AccentStyle.Render(fmt.Sprint(snap.Settings.Speed))),
		fmt.Sprintf("Game Mode: %s", draw.AccentStyle.Render(snap.Settings.Mode.Label())),
	)
	draw.Lines(cw, termWidth, row+5,
		"Press UP/DOWN to adjust speed",
		"Press M to change game mode",
		draw.DimStyle.Render("Press BACKSPACE to return"),
	)
}

// drawLeaderboardScreen draws the top scores.
func drawLeaderboardScreen(cw *draw.ChunkWriter, snap game.Snapshot, termWidth, termHeight int) {
	row := top(termHeight, len(snap.Scores)+4)
	draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("LEADERBOARD"))
	row += 2
	if len(snap.Scores) == 0 {
		draw.Centered(cw, termWidth, row, "No scores yet!")
		row++
	}
	for i, s := range snap.Scores {
		draw.Centered(cw, termWidth, row, fmt.Sprintf("#%d: %d", i+1, s))
		row++
	}
	draw.Centered(cw, termWidth, row+1, draw.DimStyle.Render("Press BACKSPACE to return"))
}

// drawAchievementsScreen lists every achievement, unlocked ones highlighted.
func drawAchievementsScreen(cw *draw.ChunkWriter, snap game.Snapshot, termWidth, termHeight int) {
	row := top(termHeight, len(snap.Achievements)*3+3)
	draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("ACHIEVEMENTS"))
	row += 2
	for _, a := range snap.Achievements {
		style := draw.DimStyle
		mark := "[ ]"
		if a.Unlocked {
			style = draw.AccentStyle
			mark = "[x]"
		}
		draw.Centered(cw, termWidth, row, style.Render(mark+" "+a.Name))
		draw.Centered(cw, termWidth, row+1, style.Render(a.Description))
		row += 3
	}
	draw.Centered(cw, termWidth, row, draw.DimStyle.Render("Press BACKSPACE to return"))
}

// drawGameOverScreen shows the final score and the next step prompts.
func drawGameOverScreen(cw *draw.ChunkWriter, snap game.Snapshot, termWidth, termHeight int) {
	row := top(termHeight, len(snap.Unlocked)+11)
	draw.Centered(cw, termWidth, row, draw.AlertStyle.Render("GAME OVER!"))
	row += 2

	reason := "You crashed!"
	if snap.Termination == game.TerminationTimeExpired {
		reason = "Time's up!"
	}
	row = draw.Lines(cw, termWidth, row, reason, fmt.Sprintf("Final Score: %d", snap.Score))
	if snap.NewHighScore {
		draw.Centered(cw, termWidth, row, draw.AccentStyle.Render("New high score!"))
	}
	row += 2

	if len(snap.Unlocked) > 0 {
		draw.Centered(cw, termWidth, row, draw.TitleStyle.Render("Achievements Unlocked:"))
		row++
		for _, name := range snap.Unlocked {
			draw.Centered(cw, termWidth, row, draw.AccentStyle.Render(name))
			row++
		}
		row++
	}

	draw.Lines(cw, termWidth, row,
		"Press SPACE to Play Again",
		"Press M for Main Menu",
		"Press ESC to Quit",
	)
}
