package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tictactoe/internal/game"
	"tictactoe/internal/store"
)

// Options configures a Model.
type Options struct {
	ShowScore bool
	Logger    *log.Logger
}

// Model is the Bubble Tea model rendering an engine and forwarding moves into it.
// The engine owns the rules; the model only keeps the cursor and the
// cumulative score.
type Model struct {
	engine   *game.Engine
	scores   *store.ScoreStore
	logger   *log.Logger
	opts     Options
	row, col int
	round    int
	recorded bool // Whether the current round's result is already in scores
	notice   string
	quitting bool
}

// NewModel creates a model driving engine and tallying results into scores.
func NewModel(engine *game.Engine, scores *store.ScoreStore, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		engine: engine,
		scores: scores,
		logger: logger,
		opts:   opts,
		row:    1,
		col:    1,
		round:  1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, position := MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "round", m.round, "score", m.scoreLine())
		return m, tea.Quit
	case ActionUp:
		m.row = (m.row + game.Size - 1) % game.Size
	case ActionDown:
		m.row = (m.row + 1) % game.Size
	case ActionLeft:
		m.col = (m.col + game.Size - 1) % game.Size
	case ActionRight:
		m.col = (m.col + 1) % game.Size
	case ActionPlace:
		m.place(game.Position(m.row, m.col))
	case ActionPlaceAt:
		m.row, m.col = game.Coords(position)
		m.place(position)
	case ActionNewRound:
		m.newRound()
	}

	return m, nil
}

// place forwards a move to the engine and records the result once the round ends.
func (m *Model) place(position int) {
	mover := m.engine.CurrentPlayer()

	if !m.engine.MakeMove(position) {
		if m.engine.IsGameOver() {
			m.notice = "Round is over. Press n for a new game."
		} else {
			m.notice = "That cell is taken."
		}
		m.logger.Debug("move rejected", "round", m.round, "position", position)
		return
	}

	m.notice = ""
	m.logger.Debug("move", "round", m.round, "player", mover, "position", position)

	if !m.engine.IsGameOver() || m.recorded {
		return
	}

	snap := m.engine.Snapshot()
	m.recorded = m.scores.RecordResult(snap.Status)
	if snap.HasLine {
		m.logger.Info("round won", "round", m.round, "winner", snap.Winner, "line", snap.WinningLine, "moves", snap.MoveCount)
	} else {
		m.logger.Info("round drawn", "round", m.round)
	}
}

// newRound resets the engine. The score carries over.
func (m *Model) newRound() {
	m.engine.Reset()
	m.round++
	m.recorded = false
	m.notice = ""
	m.row, m.col = 1, 1
	m.logger.Debug("new round", "round", m.round)
}

func (m Model) statusLine(snap game.Snapshot) string {
	switch snap.Status {
	case game.StatusXWon, game.StatusOWon:
		return fmt.Sprintf("Player %s Wins!", snap.Winner)
	case game.StatusDraw:
		return "It's a Tie!"
	default:
		return fmt.Sprintf("Player %s's Turn", snap.CurrentPlayer)
	}
}

func (m Model) scoreLine() string {
	score := m.scores.Get()
	return fmt.Sprintf("Score: X - %d | O - %d", score.XWins, score.OWins)
}

func (m Model) renderBoard(snap game.Snapshot) string {
	rows := make([]string, 0, game.Size)
	for row := 0; row < game.Size; row++ {
		cells := make([]string, 0, game.Size)
		for col := 0; col < game.Size; col++ {
			pos := game.Position(row, col)
			mark := snap.Board[pos]

			style := markStyle(cellStyle, mark)
			switch {
			case snap.OnWinningLine(pos):
				style = winStyle
			case !snap.Over && row == m.row && col == m.col:
				style = markStyle(cursorStyle, mark)
			}

			label := mark.String()
			if mark == game.MarkEmpty {
				label = "·"
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n\n")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("TIC-TAC-TOE"))
	sb.WriteString("\n\n")
	sb.WriteString(statusStyle.Render(m.statusLine(snap)))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBoard(snap))
	sb.WriteString("\n\n")
	if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice))
		sb.WriteString("\n")
	}
	if m.opts.ShowScore {
		sb.WriteString(scoreStyle.Render(m.scoreLine()))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("arrows/hjkl move • enter place • 1-9 place • n new game • q quit"))
	return sb.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
