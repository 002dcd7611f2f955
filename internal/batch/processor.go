// Package batch orchestrates roster extraction over whole directories of
// PDFs: one output file per institution, failures isolated per document.
package batch

import (
	"rosterxtract/pdf-roster/internal/assembler"
	"rosterxtract/pdf-roster/internal/fileutils"
	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/models"
	"rosterxtract/pdf-roster/internal/parsererror"
	"rosterxtract/pdf-roster/internal/rosterparser"
	"rosterxtract/pdf-roster/internal/tabwriter"
)

// DocumentParser extracts the raw faculty records from one source document.
type DocumentParser interface {
	ParseFile(path string) ([]models.FacultyRecord, error)
}

// Options configures a Processor.
type Options struct {
	Policy    assembler.Policy
	Writer    tabwriter.Writer
	OpenFiles bool
	MaxOpen   int
	Logger    logging.Logger
}

// Processor runs the extraction pipeline over documents and directories.
type Processor struct {
	parser DocumentParser
	opts   Options
}

// Summary reports the outcome of a batch run.
type Summary struct {
	OutputDir    string
	Documents    int
	Skipped      int
	FilesCreated []string
	TotalRecords int
}

// NewProcessor creates a Processor. The writer defaults to XLSX and the
// logger to the package default.
func NewProcessor(parser DocumentParser, opts Options) *Processor {
	if opts.Writer == nil {
		opts.Writer = tabwriter.NewXLSXWriter()
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetLogger()
	}
	if opts.Policy == "" {
		opts.Policy = assembler.PolicyInstitutionName
	}
	return &Processor{parser: parser, opts: opts}
}

// ProcessDocument extracts one document, assembles its final table and
// writes it to outputDir. It returns the written path and the number of
// records in the final table. A document yielding no records writes nothing
// and returns an empty path.
func (p *Processor) ProcessDocument(path, outputDir string) (string, int, error) {
	records, err := p.parser.ParseFile(path)
	if err != nil {
		return "", 0, err
	}
	if len(records) == 0 {
		p.opts.Logger.Warn("No faculty data found",
			logging.Field{Key: logging.FieldFile, Value: path})
		return "", 0, nil
	}

	institution := rosterparser.InstitutionFromPath(path)
	roster := assembler.Assemble(institution, records, p.opts.Policy)

	outPath, err := p.opts.Writer.Write(roster, outputDir)
	if err != nil {
		return "", 0, err
	}
	return outPath, len(roster.Records), nil
}

// ProcessDirectory extracts every PDF in inputDir, writing one file per
// institution. Individual document failures are logged and skipped; the only
// hard failure is the inability to create any output directory, reported as
// an OutputError. The configured output directory is tried first, then the
// standard fallback locations.
func (p *Processor) ProcessDirectory(inputDir, configuredOutputDir string) (Summary, error) {
	log := p.opts.Logger
	summary := Summary{}

	pdfs, err := fileutils.FindPDFs(inputDir)
	if err != nil {
		return summary, err
	}
	if len(pdfs) == 0 {
		log.Warn("No PDF files found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return summary, nil
	}
	summary.Documents = len(pdfs)

	outputDir, attempted, err := fileutils.FirstWritableDir(
		fileutils.OutputDirCandidates(configuredOutputDir))
	if err != nil {
		return summary, &parsererror.OutputError{Attempted: attempted, Err: err}
	}
	summary.OutputDir = outputDir

	log.Info("Starting batch extraction",
		logging.Field{Key: logging.FieldCount, Value: len(pdfs)},
		logging.Field{Key: logging.FieldOutputDir, Value: outputDir})

	for _, pdf := range pdfs {
		outPath, count, err := p.ProcessDocument(pdf, outputDir)
		if err != nil {
			log.WithError(err).Error("Skipping document",
				logging.Field{Key: logging.FieldFile, Value: pdf})
			summary.Skipped++
			continue
		}
		if outPath == "" {
			continue
		}
		summary.FilesCreated = append(summary.FilesCreated, outPath)
		summary.TotalRecords += count
	}

	log.Info("Batch extraction complete",
		logging.Field{Key: "files_created", Value: len(summary.FilesCreated)},
		logging.Field{Key: logging.FieldRecords, Value: summary.TotalRecords},
		logging.Field{Key: logging.FieldOutputDir, Value: outputDir})

	if p.opts.OpenFiles {
		p.openResults(summary)
	}

	return summary, nil
}

// openResults opens up to MaxOpen generated files plus the output folder in
// the desktop environment.
func (p *Processor) openResults(summary Summary) {
	limit := p.opts.MaxOpen
	if limit <= 0 || limit > len(summary.FilesCreated) {
		limit = len(summary.FilesCreated)
	}
	for _, file := range summary.FilesCreated[:limit] {
		fileutils.OpenInViewer(file)
	}
	if len(summary.FilesCreated) > 0 {
		fileutils.OpenInViewer(summary.OutputDir)
	}
}
