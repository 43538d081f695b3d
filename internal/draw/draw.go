// Package draw renders the board and text screens to an ANSI terminal.
package draw

import (
	"github.com/charmbracelet/lipgloss"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Text styles shared by every screen.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	AccentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	AlertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Centered writes s horizontally centered on row of a terminal width
// columns wide. Styled text is measured without its escape sequences.
func Centered(cw *ChunkWriter, width, row int, s string) {
	col := (width-lipgloss.Width(s))/2 + 1
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, s)
}

// Lines writes each line centered, starting at row. It returns the row
// after the last line.
func Lines(cw *ChunkWriter, width, row int, lines ...string) int {
	for _, l := range lines {
		Centered(cw, width, row, l)
		row++
	}
	return row
}

// Block writes lines left aligned as one block centered on the screen, so
// menus keep their numbers in a column.
func Block(cw *ChunkWriter, width, row int, lines ...string) int {
	widest := 0
	for _, l := range lines {
		widest = max(widest, lipgloss.Width(l))
	}
	col := (width-widest)/2 + 1
	if col < 1 {
		col = 1
	}
	for _, l := range lines {
		cw.WriteAt(col, row, l)
		row++
	}
	return row
}
