package rosterparser

import (
	"fmt"

	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"

	"rosterxtract/pdf-roster/internal/logging"
)

// RawRow is one table row as delivered by the extraction collaborator:
// position-significant, variable length, cells possibly absent.
type RawRow []*string

// RawTable is a sequence of raw rows.
type RawTable []RawRow

// PageTables groups the tables found on one page. Pages are numbered from 1.
// A non-nil Err means extraction failed for this page only; the caller skips
// the page and continues with the rest of the document.
type PageTables struct {
	Page   int
	Tables []RawTable
	Err    error
}

// TableExtractor is the contract with the table-extraction collaborator:
// given a PDF path, produce zero or more tables per page. The parser
// tolerates empty tables, ragged rows, all-nil rows and duplicate tables
// returned by alternate detection strategies for the same page.
type TableExtractor interface {
	ExtractTables(pdfPath string) ([]PageTables, error)
}

// TabulaExtractor implements TableExtractor using the tabula PDF library's
// geometric table detection. This is the production implementation.
type TabulaExtractor struct {
	// MinConfidence drops detected tables below this confidence score (0-1).
	MinConfidence float64

	logger logging.Logger
}

// NewTabulaExtractor creates a TabulaExtractor with the given confidence
// threshold.
func NewTabulaExtractor(minConfidence float64, logger logging.Logger) *TabulaExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TabulaExtractor{MinConfidence: minConfidence, logger: logger}
}

// ExtractTables parses the PDF and returns per-page tables with raw cell
// text.
func (e *TabulaExtractor) ExtractTables(pdfPath string) ([]PageTables, error) {
	doc, warnings, err := tabula.Open(pdfPath).Document()
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}
	if len(warnings) > 0 {
		e.logger.Debug("PDF parsed with warnings",
			logging.Field{Key: logging.FieldFile, Value: pdfPath},
			logging.Field{Key: logging.FieldReason, Value: tabula.FormatWarnings(warnings)})
	}

	pages := make([]PageTables, 0, len(doc.Pages))
	for i, page := range doc.Pages {
		pt := PageTables{Page: i + 1}
		tables, err := e.extractPage(page)
		if err != nil {
			pt.Err = err
			pages = append(pages, pt)
			continue
		}
		for ti, table := range tables {
			if table.Confidence < e.MinConfidence {
				e.logger.Debug("Skipping low-confidence table",
					logging.Field{Key: logging.FieldPage, Value: i + 1},
					logging.Field{Key: logging.FieldTable, Value: ti},
					logging.Field{Key: "confidence", Value: table.Confidence})
				continue
			}
			raw := make(RawTable, 0, len(table.Rows))
			for _, row := range table.Rows {
				cells := make(RawRow, len(row))
				for j := range row {
					text := row[j].Text
					cells[j] = &text
				}
				raw = append(raw, cells)
			}
			pt.Tables = append(pt.Tables, raw)
		}
		pages = append(pages, pt)
	}
	return pages, nil
}

// extractPage runs table detection on one page. The geometric detector can
// panic on malformed page content; the panic is confined to this page.
func (e *TabulaExtractor) extractPage(page *model.Page) (tables []*model.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("table detection failed: %v", r)
		}
	}()
	return page.ExtractTables(), nil
}

// MockExtractor implements TableExtractor for tests, returning canned pages
// or a canned error.
type MockExtractor struct {
	Pages []PageTables
	Err   error
}

// ExtractTables returns the predefined pages or error.
func (m *MockExtractor) ExtractTables(pdfPath string) ([]PageTables, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pages, nil
}
