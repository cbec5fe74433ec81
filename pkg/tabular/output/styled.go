package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/mxmh-go/pkg/tabular/models"
)

var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorMuted   = lipgloss.Color("240") // Dark gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	textCellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberCellStyle  = textCellStyle.Align(lipgloss.Right)
	missingCellStyle = numberCellStyle.Foreground(colorMuted)

	frameCellStyle = lipgloss.NewStyle().PaddingRight(1)
)

// Styled renders rows as a bordered table for terminals. Numeric columns are
// right-aligned and missing cells dimmed.
func Styled(ds *models.Dataset, rows []models.Row) string {
	body := make([][]string, len(rows))
	for i, row := range rows {
		body[i] = cells(ds, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(ds.ColumnNames()...).
		Rows(body...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= len(ds.Columns) || ds.Columns[col].Type == models.TypeString {
				return textCellStyle
			}
			if row >= 0 && row < len(rows) && rows[row][ds.Columns[col].Name] == nil {
				return missingCellStyle
			}
			return numberCellStyle
		})

	return t.Render()
}
