package game

import (
	"fmt"
	"strings"
)

// Mark represents a cell state on the board
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

func (m Mark) String() string {
	switch m {
	case MarkEmpty:
		return " "
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Opponent returns the opposing mark
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

const (
	// Size is the number of rows and columns.
	Size = 3
	// Cells is the number of positions on the board.
	Cells = Size * Size
)

// Line is an ordered triple of cell positions.
type Line [3]int

// winningLines lists every line that wins when uniformly marked.
// Order matters: when several lines complete at once the first one is reported.
var winningLines = [8]Line{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// columns
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diagonals
	{0, 4, 8}, {2, 4, 6},
}

// WinningLines returns the eight winning lines: rows, then columns, then diagonals.
func WinningLines() [8]Line {
	return winningLines
}

// Board is the 3x3 grid in row-major order.
// It is a value type, so assigning or returning it copies every cell.
type Board [Cells]Mark

// ValidPosition reports whether position addresses a cell.
func ValidPosition(position int) bool {
	return position >= 0 && position < Cells
}

// Position converts a row and column into a cell position.
func Position(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("game: row %d col %d outside %dx%d board", row, col, Size, Size))
	}
	return row*Size + col
}

// Coords converts a cell position into its row and column.
func Coords(position int) (row, col int) {
	if !ValidPosition(position) {
		panic(fmt.Sprintf("game: position %d out of range [0,%d]", position, Cells-1))
	}
	return position / Size, position % Size
}

// IsFull returns true if all cells are occupied
func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == MarkEmpty {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, cell := range b {
		if cell != MarkEmpty {
			n++
		}
	}
	return n
}

// Winner returns the first winning line completely held by mark.
func (b Board) Winner(mark Mark) (Line, bool) {
	if mark == MarkEmpty {
		return Line{}, false
	}
	for _, line := range winningLines {
		if b[line[0]] == mark && b[line[1]] == mark && b[line[2]] == mark {
			return line, true
		}
	}
	return Line{}, false
}

// String returns a string representation of the board
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			fmt.Fprintf(&sb, "[%s]", b[row*Size+col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Contains reports whether position is one of the line's cells.
func (l Line) Contains(position int) bool {
	return l[0] == position || l[1] == position || l[2] == position
}
