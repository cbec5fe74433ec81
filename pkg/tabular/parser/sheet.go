package parser

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet reads a header and data records from a workbook sheet.
// An empty sheetName selects the first sheet. The table is the bounding box
// of non-empty cells; its first row is the header. Fully blank rows inside
// the box are skipped, matching delimited text.
func ReadSheet(f *excelize.File, sheetName string) ([]string, [][]string, error) {
	sheetName, err := resolveSheet(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read sheet %q", sheetName)
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil, errors.Wrapf(ErrNoHeader, "sheet %q", sheetName)
	}

	width := maxCol - minCol + 1
	header := sliceRow(rows[minRow], minCol, width)

	var records [][]string
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		rec := sliceRow(rows[rowIdx], minCol, width)
		if isBlank(rec) {
			continue
		}
		records = append(records, rec)
	}

	return header, records, nil
}

func resolveSheet(f *excelize.File, sheetName string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrSheetNotFound
	}
	if sheetName == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheetName {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrSheetNotFound, "%q", sheetName)
}

// sliceRow copies width cells starting at col, padding short rows with
// empty cells. GetRows trims trailing empty cells.
func sliceRow(row []string, col, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && col+i < len(row); i++ {
		out[i] = row[col+i]
	}
	return out
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if cell != "" {
			return false
		}
	}
	return true
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the sheet is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
