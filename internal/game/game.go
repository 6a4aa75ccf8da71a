package game

import (
	"fmt"
	"sync"
)

// Status represents the current status of a round
type Status int

const (
	StatusInProgress Status = iota
	StatusXWon
	StatusOWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusXWon:
		return "X_WON"
	case StatusOWon:
		return "O_WON"
	case StatusDraw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// IsFinished returns true if the round has ended
func (s Status) IsFinished() bool {
	return s == StatusXWon || s == StatusOWon || s == StatusDraw
}

// state is the mutable round state owned by an Engine.
type state struct {
	board         Board
	currentPlayer Mark
	over          bool
	winner        Mark
	winningLine   Line
	hasLine       bool
	moves         int
}

func initialState() state {
	return state{currentPlayer: MarkX}
}

// Engine owns a single round of tic-tac-toe and enforces its rules.
// All methods are safe for concurrent use; each MakeMove and Reset is applied
// atomically.
type Engine struct {
	mu sync.RWMutex
	st state
}

// NewEngine creates an engine with an empty board and X to move.
func NewEngine() *Engine {
	return &Engine{st: initialState()}
}

// Reset discards the current round and starts a new one.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.st = initialState()
}

// MakeMove places the current player's mark at position.
//
// It returns false, leaving the state untouched, when the round is already
// over or the cell is occupied. A successful move does not mean the round
// continues; check IsGameOver. Positions outside [0,8] are a caller bug and
// cause a panic.
func (e *Engine) MakeMove(position int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.over {
		return false
	}
	if !ValidPosition(position) {
		panic(fmt.Sprintf("game: position %d out of range [0,%d]", position, Cells-1))
	}
	if e.st.board[position] != MarkEmpty {
		return false
	}

	mark := e.st.currentPlayer
	e.st.board[position] = mark
	e.st.moves++

	// Only the mover can have completed a line.
	if line, ok := e.st.board.Winner(mark); ok {
		e.st.over = true
		e.st.winner = mark
		e.st.winningLine = line
		e.st.hasLine = true
		return true
	}

	if e.st.board.IsFull() {
		e.st.over = true
		return true
	}

	e.st.currentPlayer = mark.Opponent()
	return true
}

// Board returns a copy of the cells.
func (e *Engine) Board() Board {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.board
}

// CurrentPlayer returns the mark to move, or the last mover once the round is over.
func (e *Engine) CurrentPlayer() Mark {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.currentPlayer
}

// IsGameOver reports whether the round ended in a win or a draw.
func (e *Engine) IsGameOver() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.over
}

// Winner returns the winning mark, or MarkEmpty if nobody has won.
func (e *Engine) Winner() Mark {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.winner
}

// WinningLine returns the completed line, if any.
func (e *Engine) WinningLine() (Line, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.winningLine, e.st.hasLine
}

// Status returns the round status derived from the current state.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st.status()
}

func (s *state) status() Status {
	switch {
	case !s.over:
		return StatusInProgress
	case s.winner == MarkX:
		return StatusXWon
	case s.winner == MarkO:
		return StatusOWon
	default:
		return StatusDraw
	}
}

// Snapshot returns a consistent copy of the whole round state
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Snapshot{
		Board:         e.st.board,
		CurrentPlayer: e.st.currentPlayer,
		Over:          e.st.over,
		Winner:        e.st.winner,
		WinningLine:   e.st.winningLine,
		HasLine:       e.st.hasLine,
		Status:        e.st.status(),
		MoveCount:     e.st.moves,
	}
}

// Snapshot is an immutable snapshot of round state
type Snapshot struct {
	Board         Board
	CurrentPlayer Mark
	Over          bool
	Winner        Mark
	WinningLine   Line
	HasLine       bool
	Status        Status
	MoveCount     int
}

// IsDraw returns true if the round ended in a draw
func (s *Snapshot) IsDraw() bool {
	return s.Status == StatusDraw
}

// OnWinningLine reports whether position belongs to the winning line.
func (s *Snapshot) OnWinningLine(position int) bool {
	return s.HasLine && s.WinningLine.Contains(position)
}
