package parser

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadDelimited reads a header and data records from delimited text.
// Input is UTF-8 unless a byte order mark says otherwise; the mark is
// dropped. Every record must have as many fields as the header.
// A zero delim means comma.
func ReadDelimited(r io.Reader, delim rune) ([]string, [][]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	if delim != 0 {
		cr.Comma = delim
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read delimited text")
	}
	if len(records) == 0 {
		return nil, nil, ErrNoHeader
	}

	return records[0], records[1:], nil
}
