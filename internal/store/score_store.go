package store

import (
	"sync/atomic"

	"tictactoe/internal/game"
)

// Score holds the cumulative results of finished rounds
type Score struct {
	XWins int32
	OWins int32
	Draws int32
}

// Rounds returns the total number of finished rounds
func (s Score) Rounds() int32 {
	return s.XWins + s.OWins + s.Draws
}

// Wins returns the win count for mark
func (s Score) Wins(mark game.Mark) int32 {
	switch mark {
	case game.MarkX:
		return s.XWins
	case game.MarkO:
		return s.OWins
	default:
		return 0
	}
}

// ScoreStore keeps a thread-safe tally of round results for one session.
// It lives only as long as the process.
type ScoreStore struct {
	xWins atomic.Int32
	oWins atomic.Int32
	draws atomic.Int32
}

// NewScoreStore creates an empty score store
func NewScoreStore() *ScoreStore {
	return &ScoreStore{}
}

// Get returns the current tally
func (s *ScoreStore) Get() Score {
	return Score{
		XWins: s.xWins.Load(),
		OWins: s.oWins.Load(),
		Draws: s.draws.Load(),
	}
}

// RecordWin records a win for mark
func (s *ScoreStore) RecordWin(mark game.Mark) {
	switch mark {
	case game.MarkX:
		s.xWins.Add(1)
	case game.MarkO:
		s.oWins.Add(1)
	}
}

// RecordDraw records a drawn round
func (s *ScoreStore) RecordDraw() {
	s.draws.Add(1)
}

// RecordResult records the outcome of a finished round.
// It returns false and records nothing if the round is still in progress.
func (s *ScoreStore) RecordResult(status game.Status) bool {
	switch status {
	case game.StatusXWon:
		s.RecordWin(game.MarkX)
	case game.StatusOWon:
		s.RecordWin(game.MarkO)
	case game.StatusDraw:
		s.RecordDraw()
	default:
		return false
	}
	return true
}

// Clear zeroes the tally
func (s *ScoreStore) Clear() {
	s.xWins.Store(0)
	s.oWins.Store(0)
	s.draws.Store(0)
}
