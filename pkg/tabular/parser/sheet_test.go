package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table starts at B2 and has a trailing empty cell and a blank row
	f.SetCellValue(sheetName, "B2", "Age")
	f.SetCellValue(sheetName, "C2", "Fav genre")
	f.SetCellValue(sheetName, "D2", "BPM")
	f.SetCellValue(sheetName, "B3", 18)
	f.SetCellValue(sheetName, "C3", "Latin")
	f.SetCellValue(sheetName, "D3", 156)
	f.SetCellValue(sheetName, "B5", 61)
	f.SetCellValue(sheetName, "C5", "Rock")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and read
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	header, records, err := ReadSheet(f2, "")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if len(header) != 3 || header[0] != "Age" || header[2] != "BPM" {
		t.Errorf("Unexpected header %q", header)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0][0] != "18" || records[0][2] != "156" {
		t.Errorf("Unexpected first record %q", records[0])
	}
	// Trailing empty cell is padded
	if len(records[1]) != 3 || records[1][2] != "" {
		t.Errorf("Expected padded record, got %q", records[1])
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, err := ReadSheet(f, "Responses")
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestReadSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, err := ReadSheet(f, "Sheet1")
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{nil, -1, -1, -1, -1},
		{[][]string{{"", ""}, {}}, -1, -1, -1, -1},
		{[][]string{{"a"}}, 0, 0, 0, 0},
		{[][]string{{}, {"", "a", "b"}, {"", "", "", "c"}}, 1, 2, 1, 3},
	}

	for _, tt := range tests {
		minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
		if minRow != tt.minRow || maxRow != tt.maxRow || minCol != tt.minCol || maxCol != tt.maxCol {
			t.Errorf("findDataBounds(%q) = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
				tt.rows, minRow, maxRow, minCol, maxCol, tt.minRow, tt.maxRow, tt.minCol, tt.maxCol)
		}
	}
}
