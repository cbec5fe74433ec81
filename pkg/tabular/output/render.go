// Package output renders dataset previews for a display surface.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/ukaji3/mxmh-go/pkg/tabular/models"
)

// Render writes rows of ds to w, as a styled table when styled is true and
// as a plain frame otherwise.
func Render(w io.Writer, ds *models.Dataset, rows []models.Row, styled bool) error {
	var out string
	if styled {
		out = Styled(ds, rows)
	} else {
		var err error
		if out, err = Frame(ds, rows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// Frame renders rows as a plain-text data frame with column types. Every
// column is shown regardless of width.
func Frame(ds *models.Dataset, rows []models.Row) (string, error) {
	if len(rows) == 0 {
		return fmt.Sprintf("Empty DataFrame\nColumns: [%s]", strings.Join(ds.ColumnNames(), ", ")), nil
	}

	types := make(map[string]series.Type, len(ds.Columns))
	for _, c := range ds.Columns {
		types[c.Name] = seriesType(c.Type)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, ds.ColumnNames())
	for _, row := range rows {
		records = append(records, cells(ds, row))
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return "", errors.Wrap(df.Err, "build frame")
	}
	return layoutFrame(df), nil
}

// layoutFrame prints every column of df: a dimension line, the header, one
// indexed line per row and a line of column types. gota's own String()
// elides columns past a fixed width.
func layoutFrame(df dataframe.DataFrame) string {
	records := df.Records()

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		Headers(append([]string{""}, records[0]...)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return frameCellStyle
		})

	for i, rec := range records[1:] {
		t.Row(append([]string{fmt.Sprintf("%d:", i)}, rec...)...)
	}

	types := []string{""}
	for _, typ := range df.Types() {
		types = append(types, "<"+string(typ)+">")
	}
	t.Row(types...)

	return fmt.Sprintf("[%dx%d] DataFrame\n\n%s", df.Nrow(), df.Ncol(), t.Render())
}

func seriesType(t models.ColumnType) series.Type {
	switch t {
	case models.TypeInt:
		return series.Int
	case models.TypeFloat:
		return series.Float
	default:
		return series.String
	}
}

func cells(ds *models.Dataset, row models.Row) []string {
	rec := make([]string, len(ds.Columns))
	for j, c := range ds.Columns {
		rec[j] = FormatCell(row[c.Name])
	}
	return rec
}

// FormatCell formats a cell value for display. Missing numeric cells are NaN.
func FormatCell(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NaN"
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
