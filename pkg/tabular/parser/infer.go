// Package parser reads raw tabular text from delimited files and workbooks
// and turns it into typed datasets.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/mxmh-go/pkg/tabular/models"
)

// ErrNoHeader indicates the source holds no header row.
var ErrNoHeader = errors.New("no header row")

// BuildDataset infers a type for every column and converts records into rows.
// Every record must be as wide as the header.
func BuildDataset(name string, header []string, records [][]string) (*models.Dataset, error) {
	names, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if len(rec) != len(names) {
			return nil, errors.Errorf("record %d: expected %d fields, got %d", i+1, len(names), len(rec))
		}
	}

	columns := make([]models.Column, len(names))
	values := make([]string, len(records))
	for j, colName := range names {
		for i, rec := range records {
			values[i] = rec[j]
		}
		columns[j] = models.Column{Name: colName, Type: InferColumnType(values)}
	}

	rows := make([]models.Row, len(records))
	for i, rec := range records {
		row := make(models.Row, len(columns))
		for j, col := range columns {
			row[col.Name] = convertCell(rec[j], col.Type)
		}
		rows[i] = row
	}

	return &models.Dataset{
		Name:    name,
		Columns: columns,
		Rows:    rows,
	}, nil
}

// normalizeHeader trims header cells, names blank cells "Unnamed: <idx>"
// (0-based) and renames repeats to "<name>.<n>" so every name is unique.
func normalizeHeader(header []string) ([]string, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
			n = counts[name]
		}
		counts[name] = n + 1
		names[i] = name
	}
	return names, nil
}

// InferColumnType decides the type of a column from its raw values.
// Blank values are missing and do not vote. A column of integers with a
// missing value becomes float, since missing cells are only representable
// in float columns.
func InferColumnType(values []string) models.ColumnType {
	seen, missing, allInts := false, false, true
	for _, v := range values {
		s := strings.TrimSpace(v)
		if s == "" {
			missing = true
			continue
		}
		seen = true
		switch parseValue(s).(type) {
		case int64:
		case float64:
			allInts = false
		default:
			return models.TypeString
		}
	}

	switch {
	case !seen:
		return models.TypeString
	case allInts && !missing:
		return models.TypeInt
	default:
		return models.TypeFloat
	}
}

// convertCell converts raw text to the column's cell representation.
func convertCell(raw string, t models.ColumnType) interface{} {
	if t == models.TypeString {
		return raw
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	switch v := parseValue(s).(type) {
	case int64:
		if t == models.TypeFloat {
			return float64(v)
		}
		return v
	case float64:
		return v
	}
	return nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Words such as "NaN" or "Inf" stay strings.
func parseValue(s string) interface{} {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; out of range literals become ±Inf or 0
	if f, err := strconv.ParseFloat(s, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return f
	}
	return s
}
