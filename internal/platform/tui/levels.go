package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var levelTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	MarginBottom(1)

// levelColumns lists the derived parameters shown per level.
var levelColumns = []table.Column{
	{Title: "Level", Width: 5},
	{Title: "Ship", Width: 6},
	{Title: "Invader v", Width: 9},
	{Title: "Bomb rate", Width: 9},
	{Title: "Bomb v", Width: 13},
	{Title: "Rockets", Width: 7},
	{Title: "Grid", Width: 7},
}

// LevelRows derives the parameters for levels 1..maxLevel.
func LevelRows(cfg config.Config, maxLevel int) ([]config.LevelParams, error) {
	rows := make([]config.LevelParams, 0, max(maxLevel, 0))
	for level := 1; level <= maxLevel; level++ {
		p, err := cfg.Derive(level)
		if err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return rows, nil
}

// levelRow formats one level for the table.
func levelRow(p config.LevelParams) table.Row {
	return table.Row{
		strconv.Itoa(p.Level),
		fmt.Sprintf("%.0f", p.ShipSpeed),
		fmt.Sprintf("%.1f", p.InvaderInitialVelocity),
		fmt.Sprintf("%.3f", p.BombRate),
		fmt.Sprintf("%.0f-%.0f", p.BombMinVelocity, p.BombMaxVelocity),
		strconv.Itoa(p.RocketMaxFire),
		fmt.Sprintf("%dx%d", p.InvaderRanks, p.InvaderFiles),
	}
}

// RenderLevelTable renders the difficulty curve as a static table.
func RenderLevelTable(title string, params []config.LevelParams) string {
	rows := make([]table.Row, 0, len(params))
	for _, p := range params {
		rows = append(rows, levelRow(p))
	}

	t := table.New(
		table.WithColumns(levelColumns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return lipgloss.JoinVertical(lipgloss.Left, levelTitleStyle.Render(title), t.View())
}
