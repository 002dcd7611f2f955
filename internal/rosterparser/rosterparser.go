// Package rosterparser turns one accreditation-disclosure PDF into the
// faculty records it discloses. Table extraction is delegated to a
// TableExtractor collaborator; this package owns the row classification and
// field inference applied to the extracted rows.
package rosterparser

import (
	"path/filepath"
	"strings"

	"rosterxtract/pdf-roster/internal/assembler"
	"rosterxtract/pdf-roster/internal/classifier"
	"rosterxtract/pdf-roster/internal/inference"
	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/models"
	"rosterxtract/pdf-roster/internal/parsererror"
	"rosterxtract/pdf-roster/internal/textutils"
	"rosterxtract/pdf-roster/internal/vocab"
)

// serialCeiling drops rows whose parsed serial number is implausibly large,
// even when the looser classifier accepted them.
const serialCeiling = 10000

// minTableRows skips degenerate tables; a roster table has at least a header
// row and one data row.
const minTableRows = 2

// Options configures a Parser.
type Options struct {
	// Extractor supplies the per-page tables. Defaults to a TabulaExtractor
	// with no confidence floor.
	Extractor TableExtractor

	// Vocabulary drives classification and inference keyword matching.
	Vocabulary vocab.Vocabulary

	// Strict selects the stricter row classifier (bounded serial, minimum
	// populated cells).
	Strict bool

	Logger logging.Logger
}

// Parser extracts faculty records from roster PDFs.
type Parser struct {
	extractor  TableExtractor
	classifier *classifier.Classifier
	engine     *inference.Engine
	logger     logging.Logger
}

// New creates a Parser from options, filling in defaults for absent fields.
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = logging.GetLogger()
	}
	if opts.Extractor == nil {
		opts.Extractor = NewTabulaExtractor(0, opts.Logger)
	}
	if len(opts.Vocabulary.Exclusion) == 0 {
		opts.Vocabulary = vocab.Default()
	}
	return &Parser{
		extractor:  opts.Extractor,
		classifier: classifier.New(opts.Vocabulary, opts.Strict),
		engine:     inference.New(opts.Vocabulary),
		logger:     opts.Logger,
	}
}

// InstitutionFromPath derives the institution name from the source file
// identifier: the base name without its extension.
func InstitutionFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile extracts all faculty records from one PDF. The returned records
// are deduplicated by (name, serial) across pages but not yet assembled into
// a final table; that is the assembler's job. A failure to read or parse the
// document is returned as a DocumentError; failures confined to a single
// page are logged and skipped.
func (p *Parser) ParseFile(path string) ([]models.FacultyRecord, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            "unsupported file extension",
		}
	}

	institution := InstitutionFromPath(path)
	log := p.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldInstitution, Value: institution},
	)
	log.Info("Parsing roster PDF")

	pages, err := p.extractor.ExtractTables(path)
	if err != nil {
		return nil, &parsererror.DocumentError{FilePath: path, Err: err}
	}

	acc := assembler.NewAccumulator()
	emptyPages := 0
	failedPages := 0
	for _, page := range pages {
		if page.Err != nil {
			pageErr := &parsererror.PageError{FilePath: path, Page: page.Page, Err: page.Err}
			log.WithError(pageErr).Warn("Skipping page",
				logging.Field{Key: logging.FieldPage, Value: page.Page})
			failedPages++
			continue
		}
		kept, dropped := p.processPage(page, institution, acc)
		if kept == 0 && dropped == 0 && len(page.Tables) == 0 {
			emptyPages++
		}
		log.Debug("Processed page",
			logging.Field{Key: logging.FieldPage, Value: page.Page},
			logging.Field{Key: logging.FieldRecords, Value: kept},
			logging.Field{Key: "duplicates", Value: dropped})
	}

	log.Info("Extracted faculty records",
		logging.Field{Key: logging.FieldCount, Value: acc.Len()},
		logging.Field{Key: "empty_pages", Value: emptyPages},
		logging.Field{Key: "failed_pages", Value: failedPages})
	return acc.Records(), nil
}

// processPage classifies and infers every row of every table on one page,
// feeding qualifying records into the accumulator. It returns how many
// records were kept and how many were dropped as cross-page duplicates.
func (p *Parser) processPage(page PageTables, institution string, acc *assembler.Accumulator) (kept, dropped int) {
	for _, table := range page.Tables {
		if len(table) < minTableRows {
			continue
		}
		for _, raw := range table {
			if len(raw) == 0 {
				continue
			}
			row := textutils.NormalizeRow(raw)
			if !p.classifier.IsFacultyRow(row) {
				continue
			}
			serial, ok := textutils.ExtractNumber(row[0])
			if !ok || serial == 0 || serial > serialCeiling {
				continue
			}
			rec, ok := p.engine.Infer(row, serial, institution)
			if !ok {
				continue
			}
			if acc.Add(rec) {
				kept++
			} else {
				dropped++
			}
		}
	}
	return kept, dropped
}
