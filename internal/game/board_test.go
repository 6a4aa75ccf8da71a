package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boardFrom(marks string) Board {
	var b Board
	for i, r := range marks {
		switch r {
		case 'X':
			b[i] = MarkX
		case 'O':
			b[i] = MarkO
		}
	}
	return b
}

func TestBoard_IsFull(t *testing.T) {
	var board Board
	assert.False(t, board.IsFull())
	assert.Equal(t, 0, board.Count())

	// Fill the board
	mark := MarkX
	for i := range board {
		board[i] = mark
		mark = mark.Opponent()
	}

	assert.True(t, board.IsFull())
	assert.Equal(t, Cells, board.Count())
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		mark     Mark
		wantLine Line
		wantWin  bool
	}{
		{name: "top row", board: "XXXOO....", mark: MarkX, wantLine: Line{0, 1, 2}, wantWin: true},
		{name: "middle row", board: "XX.OOOX..", mark: MarkO, wantLine: Line{3, 4, 5}, wantWin: true},
		{name: "bottom row", board: "OO....XXX", mark: MarkX, wantLine: Line{6, 7, 8}, wantWin: true},
		{name: "left column", board: "XO.XO.X..", mark: MarkX, wantLine: Line{0, 3, 6}, wantWin: true},
		{name: "middle column", board: "XO.XO..O.", mark: MarkO, wantLine: Line{1, 4, 7}, wantWin: true},
		{name: "right column", board: "O.XO.X..X", mark: MarkX, wantLine: Line{2, 5, 8}, wantWin: true},
		{name: "diagonal", board: "XO.OX...X", mark: MarkX, wantLine: Line{0, 4, 8}, wantWin: true},
		{name: "anti-diagonal", board: ".OXOX.X..", mark: MarkX, wantLine: Line{2, 4, 6}, wantWin: true},
		{name: "opponent line ignored", board: "XXXOO....", mark: MarkO, wantWin: false},
		{name: "no winner", board: "XO..X....", mark: MarkX, wantWin: false},
		{name: "empty mark never wins", board: ".........", mark: MarkEmpty, wantWin: false},
		{name: "first line in order wins", board: "XXXXOOXOO", mark: MarkX, wantLine: Line{0, 1, 2}, wantWin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := boardFrom(tt.board).Winner(tt.mark)
			assert.Equal(t, tt.wantWin, ok)
			if tt.wantWin {
				assert.Equal(t, tt.wantLine, line)
			}
		})
	}
}

func TestBoard_CopySemantics(t *testing.T) {
	board := boardFrom("X........")

	clone := board
	board[8] = MarkO

	assert.Equal(t, MarkX, clone[0])
	assert.Equal(t, MarkEmpty, clone[8])
}

func TestBoard_String(t *testing.T) {
	board := boardFrom("XO..X...O")
	assert.Equal(t, "[X][O][ ]\n[ ][X][ ]\n[ ][ ][O]\n", board.String())
}

func TestPositionCoords(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position(row, col)
			assert.Equal(t, row*3+col, pos)

			r, c := Coords(pos)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}

	assert.Panics(t, func() { Position(3, 0) })
	assert.Panics(t, func() { Position(0, -1) })
	assert.Panics(t, func() { Coords(9) })
	assert.Panics(t, func() { Coords(-1) })
}

func TestLine_Contains(t *testing.T) {
	line := Line{2, 4, 6}
	assert.True(t, line.Contains(4))
	assert.False(t, line.Contains(0))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, MarkEmpty, MarkEmpty.Opponent())
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, " ", MarkEmpty.String())
}

func TestStatus_IsFinished(t *testing.T) {
	assert.False(t, StatusInProgress.IsFinished())
	assert.True(t, StatusXWon.IsFinished())
	assert.True(t, StatusOWon.IsFinished())
	assert.True(t, StatusDraw.IsFinished())
	assert.Equal(t, "DRAW", StatusDraw.String())
}
