// Package batch handles batch processing of roster PDFs from a directory
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosterxtract/pdf-roster/cmd/root"
	"rosterxtract/pdf-roster/internal/fileutils"
	"rosterxtract/pdf-roster/internal/logging"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract faculty rosters from every PDF in a directory",
	Long: `Batch process all PDF files in an input directory, producing one
spreadsheet per institution.

Each document is processed independently: a corrupt or unreadable PDF is
logged and skipped without aborting the batch. If the output directory cannot
be created, the standard fallback locations (Desktop, Documents, Downloads,
working directory, temp) are tried in order.

Example:
  pdf-roster batch -i pdfs/ -o rosters/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = root.Cfg.Output.Directory
	}

	if inputDir == "" {
		logger.Fatal("Input directory must be specified")
	}
	if !fileutils.DirectoryExists(inputDir) {
		logger.Fatalf("Input directory does not exist: %s", inputDir)
	}

	processor := root.BuildProcessor()
	summary, err := processor.ProcessDirectory(inputDir, outputDir)
	if err != nil {
		logger.Fatalf("Batch extraction failed: %v", err)
	}

	logger.Info(fmt.Sprintf("Batch complete: %d of %d documents produced output",
		len(summary.FilesCreated), summary.Documents),
		logging.Field{Key: logging.FieldRecords, Value: summary.TotalRecords},
		logging.Field{Key: logging.FieldOutputDir, Value: summary.OutputDir})
}
