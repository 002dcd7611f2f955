package tabwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/models"
)

// sheetName is the single worksheet every roster workbook carries.
const sheetName = "Faculty"

// XLSXWriter writes rosters as Excel workbooks using excelize.
type XLSXWriter struct {
	logger logging.Logger
}

// NewXLSXWriter returns an XLSXWriter using the default logger.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{logger: logging.GetLogger()}
}

// Write persists the roster as one workbook and returns the path written.
func (w *XLSXWriter) Write(roster models.Roster, outputDir string) (string, error) {
	outPath := OutputPath(outputDir, roster.Institution, "xlsx")

	if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close workbook",
				logging.Field{Key: logging.FieldOutputFile, Value: outPath})
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("failed to name worksheet: %w", err)
	}

	for i, header := range models.OutputColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, rec := range roster.Records {
		for colIdx, value := range rec.Values() {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return "", fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("Wrote roster workbook",
		logging.Field{Key: logging.FieldOutputFile, Value: outPath},
		logging.Field{Key: logging.FieldCount, Value: len(roster.Records)})
	return outPath, nil
}
