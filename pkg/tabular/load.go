package tabular

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/ukaji3/mxmh-go/pkg/tabular/models"
	"github.com/ukaji3/mxmh-go/pkg/tabular/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a delimited text file or an .xlsx workbook into a Dataset.
// It fails with ErrFileNotFound when path is not a readable file and with
// ErrParse when the content cannot be read as a rectangular table.
func Load(path string, opts Options) (*models.Dataset, error) {
	log := opts.logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, newFileNotFound(path, err)
	}
	if info.IsDir() {
		return nil, newFileNotFound(path, errors.New("is a directory"))
	}

	var header []string
	var records [][]string
	if isWorkbook(path) {
		log.Verbose("reading workbook %s", path)
		header, records, err = readWorkbook(path, opts.Sheet)
	} else {
		log.Verbose("reading delimited text %s", path)
		header, records, err = readDelimited(path, opts.Delimiter)
	}
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return nil, err
		}
		return nil, NewParseError(path, err)
	}

	ds, err := parser.BuildDataset(filepath.Base(path), header, records)
	if err != nil {
		return nil, NewParseError(path, err)
	}

	for _, col := range ds.Columns {
		log.Verbose("column %q inferred as %s", col.Name, col.Type)
	}
	log.Info("loaded %d rows, %d columns from %s", ds.Len(), len(ds.Columns), ds.Name)

	return ds, nil
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

func readDelimited(path string, delim rune) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, newFileNotFound(path, err)
	}
	defer f.Close()

	return parser.ReadDelimited(f, delim)
}

func readWorkbook(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, newFileNotFound(path, err)
		}
		return nil, nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	return parser.ReadSheet(f, sheet)
}
