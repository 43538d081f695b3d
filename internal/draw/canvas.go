package draw

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is what occupies one grid square of the board.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBody
	CellHead
	CellFood
	CellObstacle
	CellPowerUp
)

// cellColors maps board contents to ANSI 256 palette entries.
var cellColors = map[Cell]lipgloss.Color{
	CellBody:     lipgloss.Color("34"),
	CellHead:     lipgloss.Color("46"),
	CellFood:     lipgloss.Color("196"),
	CellObstacle: lipgloss.Color("244"),
	CellPowerUp:  lipgloss.Color("214"),
}

// Canvas is the board buffer. Each terminal character carries two grid rows
// stacked with half-block glyphs, so a square grid cell is one column wide
// and half a row tall.
type Canvas struct {
	cols  int
	rows  int
	cells []Cell // Flat slice: [row * cols + col]

	// 1-based terminal position of the top-left border corner.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewCanvas creates an empty board of cols x rows grid cells.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Cols returns the board width in grid cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the board height in grid cells.
func (c *Canvas) Rows() int { return c.rows }

// TerminalWidth returns the board width in terminal columns, border excluded.
func (c *Canvas) TerminalWidth() int { return c.cols }

// TerminalHeight returns the board height in terminal rows, border excluded.
func (c *Canvas) TerminalHeight() int { return (c.rows + 1) / 2 }

// Fit centers the board, border included, inside a terminal of the given
// size. It reports false when the terminal is too small to hold it.
func (c *Canvas) Fit(termWidth, termHeight int) bool {
	w := c.TerminalWidth() + 2
	h := c.TerminalHeight() + 2
	if termWidth < w || termHeight < h+hudRows {
		return false
	}
	c.offsetCol = (termWidth-w)/2 + 1
	c.offsetRow = (termHeight-h-hudRows)/2 + hudRows + 1
	return true
}

// hudRows is the space reserved above the board for the status line.
const hudRows = 1

// OffsetCol returns the terminal column of the left border.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the terminal row of the top border.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Set places v at grid cell (col, row). Out of range cells are ignored.
func (c *Canvas) Set(col, row int, v Cell) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = v
}

// At returns the content of grid cell (col, row).
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return CellEmpty
	}
	return c.cells[row*c.cols+col]
}

// Render writes the board to cw, two grid rows per terminal row.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.TerminalHeight(); row++ {
		c.renderBuf.Reset()
		for col := 0; col < c.cols; col++ {
			top := c.At(col, row*2)
			bottom := c.At(col, row*2+1)
			c.renderBuf.WriteString(glyph(top, bottom))
		}
		cw.MoveCursor(c.offsetCol+1, c.offsetRow+row+1)
		cw.WriteString(c.renderBuf.String())
	}
}

// glyph picks the half-block character for a stacked pair of cells.
func glyph(top, bottom Cell) string {
	switch {
	case top == CellEmpty && bottom == CellEmpty:
		return " "
	case bottom == CellEmpty:
		return lipgloss.NewStyle().Foreground(cellColors[top]).Render(string(BlockUpperHalf))
	case top == CellEmpty:
		return lipgloss.NewStyle().Foreground(cellColors[bottom]).Render(string(BlockLowerHalf))
	case top == bottom:
		return lipgloss.NewStyle().Foreground(cellColors[top]).Render(string(BlockFull))
	default:
		return lipgloss.NewStyle().
			Foreground(cellColors[top]).
			Background(cellColors[bottom]).
			Render(string(BlockUpperHalf))
	}
}

// RenderBorder draws a box around the board.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	left := c.offsetCol
	right := c.offsetCol + c.TerminalWidth() + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.TerminalHeight() + 1
	line := strings.Repeat("─", c.TerminalWidth())

	cw.WriteAt(left, top, "┌"+line+"┐")
	cw.WriteAt(left, bottom, "└"+line+"┘")
	for row := top + 1; row < bottom; row++ {
		cw.WriteAt(left, row, "│")
		cw.WriteAt(right, row, "│")
	}
}
