package commands

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

const (
	colorHeader lipgloss.Color = "#cba6f7"
	colorBorder lipgloss.Color = "#585b70"
	colorNeg    lipgloss.Color = "#f38ba8"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// renderTable draws rows under headers. Columns listed in numeric are right
// aligned and negative values in them are highlighted.
func renderTable(headers []string, rows [][]string, numeric ...int) string {
	isNum := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		isNum[c] = true
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if !isNum[col] {
				return cellStyle
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) {
				if d, err := decimal.NewFromString(rows[row][col]); err == nil && d.IsNegative() {
					return numberStyle.Foreground(colorNeg)
				}
			}
			return numberStyle
		})
	return t.String()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
