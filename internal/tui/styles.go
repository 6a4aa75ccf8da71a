package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tictactoe/internal/game"
)

var (
	colorX    = lipgloss.Color("#ff4757")
	colorO    = lipgloss.Color("#2ed573")
	colorWin  = lipgloss.Color("#ffa502")
	colorText = lipgloss.Color("#ffffff")
	colorDim  = lipgloss.Color("#a0a0a0")
	colorCell = lipgloss.Color("#2d3748")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Padding(0, 1)
	scoreStyle  = lipgloss.NewStyle().Foreground(colorText)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	noticeStyle = lipgloss.NewStyle().Foreground(colorWin)

	cellStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Background(colorCell)
	cursorStyle = cellStyle.Reverse(true)
	winStyle    = cellStyle.Background(colorWin).Foreground(lipgloss.Color("#000000")).Bold(true)
)

// markStyle returns the style for a cell holding mark.
func markStyle(base lipgloss.Style, mark game.Mark) lipgloss.Style {
	switch mark {
	case game.MarkX:
		return base.Foreground(colorX).Bold(true)
	case game.MarkO:
		return base.Foreground(colorO).Bold(true)
	default:
		return base
	}
}
