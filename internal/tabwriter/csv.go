package tabwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/models"
)

// Delimiter is the CSV output delimiter. Configurable for locales whose
// spreadsheet tools expect semicolons.
var Delimiter rune = ','

// SetDelimiter changes the CSV output delimiter.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// CSVWriter writes rosters as CSV files using gocsv struct tags for the
// column mapping.
type CSVWriter struct {
	logger logging.Logger
}

// NewCSVWriter returns a CSVWriter using the default logger.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{logger: logging.GetLogger()}
}

// Write persists the roster as one CSV file and returns the path written.
// An empty roster still produces a file with the header row.
func (w *CSVWriter) Write(roster models.Roster, outputDir string) (string, error) {
	outPath := OutputPath(outputDir, roster.Institution, "csv")

	if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outPath) // #nosec G304 -- path is derived from user-chosen output dir
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldOutputFile, Value: outPath})
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	records := roster.Records
	if records == nil {
		records = []models.FacultyRecord{}
	}
	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return "", fmt.Errorf("failed to write CSV data: %w", err)
	}

	w.logger.Info("Wrote roster CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: outPath},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return outPath, nil
}
