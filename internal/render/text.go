package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/puzzles/internal/domain"
)

var (
	givenStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	solvedStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("9"))

	emptyStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("8"))

	boxDivider = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			Render("")
)

// BoardText renders a board for the terminal. Given digits are bold,
// solver digits dim red, empty cells a faint dot.
func BoardText(b *domain.Board) string {
	var rows []string
	for r := 0; r < 9; r++ {
		var cells []string
		for c := 0; c < 9; c++ {
			var cell string
			switch v := b.Values[r][c]; {
			case v == 0:
				cell = emptyStyle.Render("·")
			case b.Fixed[r][c]:
				cell = givenStyle.Render(string('0' + rune(v)))
			default:
				cell = solvedStyle.Render(string('0' + rune(v)))
			}
			cells = append(cells, cell)
			if c == 2 || c == 5 {
				cells = append(cells, boxDivider)
			}
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		rows = append(rows, row)
		if r == 2 || r == 5 {
			w := lipgloss.Width(row)
			seg := strings.Repeat("─", (w-2)/3)
			rows = append(rows, seg+"┼"+seg+"┼"+seg)
		}
	}
	return strings.Join(rows, "\n")
}
