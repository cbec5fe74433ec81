// Package tabular loads delimited text and workbook files into typed datasets
// and exposes bounded previews of their leading rows.
package tabular

import "github.com/ukaji3/mxmh-go/internal/logging"

// DefaultPath is the survey file read by the command.
const DefaultPath = "data/Music_and_Mental_Health_-_Survey.csv"

// DefaultPreviewRows is the row count shown by Head.
const DefaultPreviewRows = 5

// Options configures loading behavior.
type Options struct {
	// Delimiter separates fields in delimited text. Zero means comma.
	Delimiter rune
	// Sheet names the workbook sheet to read. Empty means the first sheet.
	Sheet string
	// Logger receives diagnostics. Nil discards them.
	Logger logging.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
	}
}

func (o Options) logger() logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewNullLogger()
}
