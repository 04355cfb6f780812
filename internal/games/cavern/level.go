package cavern

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-ports/internal/core"
)

// Playfield geometry in pixels. The grid is NumCols x NumRows blocks of
// BlockSize, starting LevelXOffset from the left edge.
const (
	Width        = 800
	Height       = 480
	NumCols      = 28
	NumRows      = 18
	BlockSize    = 25
	LevelXOffset = 50

	// Horizontal movement stops outside [MinX, MaxX].
	MinX = 70
	MaxX = 730

	MaxFallSpeed = 10
)

// ErrEmptyLevel is returned when a level has no rows.
var ErrEmptyLevel = errors.New("cavern: empty level")

// Level is a grid of rows, top to bottom. Any rune other than a space is a
// solid block; short or empty rows are open space past their end.
type Level struct {
	rows []string
}

// NewLevel builds a level from its rows. A level one row short of NumRows
// gets its top row repeated at the bottom, so robots and the player falling
// off the bottom land where they reappear.
func NewLevel(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}
	if len(rows) > NumRows {
		return nil, fmt.Errorf("cavern: level has %d rows, at most %d allowed", len(rows), NumRows)
	}

	grid := append([]string(nil), rows...)
	if len(grid) == NumRows-1 {
		grid = append(grid, grid[0])
	}
	return &Level{rows: grid}, nil
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int {
	return len(l.rows)
}

// Solid reports whether grid cell (col, row) holds a block.
func (l *Level) Solid(col, row int) bool {
	if row < 0 || row >= len(l.rows) || col < 0 || col >= NumCols {
		return false
	}
	r := l.rows[row]
	return col < len(r) && r[col] != ' '
}

// Block reports whether pixel (x, y) lies inside a block. The top grid row
// never blocks, so actors can drop in through it.
func (l *Level) Block(x, y int) bool {
	col := core.FloorDiv(x-LevelXOffset, BlockSize)
	row := core.FloorDiv(y, BlockSize)
	if row <= 0 || row >= NumRows {
		return false
	}
	return l.Solid(col, row)
}

// OpenTopColumns lists the columns of the top row with no block.
func (l *Level) OpenTopColumns() []int {
	var cols []int
	for c := 0; c < NumCols; c++ {
		if !l.Solid(c, 0) {
			cols = append(cols, c)
		}
	}
	return cols
}
