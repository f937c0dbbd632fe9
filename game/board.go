package game

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Cell holds the occupancy of a single board position.
type Cell int

const (
	Empty Cell = iota
	Player1
	Player2
)

func (c Cell) String() string {
	switch c {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player given one player's id.
func Opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

// Board is a width x height Connect-N grid. A Board is immutable once
// created - playing a move always returns a fresh copy, so search code can
// explore sibling positions from a shared parent without cross-contamination.
type Board struct {
	width  int
	height int
	cells  []Cell // row-major, row 0 is the top
}

// NewBoard returns an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) index(row, column int) int {
	return row*b.width + column
}

// At returns the cell at the given position, row 0 being the top row.
func (b *Board) At(row, column int) Cell {
	return b.cells[b.index(row, column)]
}

// IsValid reports whether a piece can be played in the given column.
func (b *Board) IsValid(column int) bool {
	if column < 0 || column >= b.width {
		return false
	}
	return b.cells[b.index(0, column)] == Empty
}

// HasMove reports whether any column can still be played.
func (b *Board) HasMove() bool {
	for c := 0; c < b.width; c++ {
		if b.IsValid(c) {
			return true
		}
	}
	return false
}

// GetNewBoard returns a new board with player's piece dropped into the
// lowest empty cell of the given column. The receiver is left untouched.
// The caller must check IsValid first.
func (b *Board) GetNewBoard(column, player int) *Board {
	if !b.IsValid(column) {
		panic(fmt.Sprintf("column %d is not playable", column))
	}
	next := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(next.cells, b.cells)

	for row := b.height - 1; row >= 0; row-- {
		i := next.index(row, column)
		if next.cells[i] == Empty {
			next.cells[i] = Cell(player)
			break
		}
	}
	return next
}

// String renders the board for terminal play, with a 1-based column footer.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for column := 0; column < b.width; column++ {
			switch b.At(row, column) {
			case Player1:
				fmt.Fprintf(&sb, "%s ", aurora.Red("X"))
			case Player2:
				fmt.Fprintf(&sb, "%s ", aurora.Cyan("O"))
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	for column := 1; column <= b.width; column++ {
		fmt.Fprintf(&sb, "%d ", column)
	}
	sb.WriteByte('\n')
	return sb.String()
}
