// Package extract handles conversion of a single roster PDF
package extract

import (
	"github.com/spf13/cobra"

	"rosterxtract/pdf-roster/cmd/root"
	"rosterxtract/pdf-roster/internal/fileutils"
	"rosterxtract/pdf-roster/internal/logging"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the faculty roster from a single PDF",
	Long: `Extract the faculty roster from one accreditation-disclosure PDF and write
it as a spreadsheet named after the institution.

Example:
  pdf-roster extract -i college.pdf -o out/`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	input := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if input == "" {
		logger.Fatal("Input file must be specified")
	}
	if !fileutils.FileExists(input) {
		logger.Fatalf("Input file does not exist: %s", input)
	}
	if outputDir == "" {
		outputDir = "."
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	processor := root.BuildProcessor()
	outPath, count, err := processor.ProcessDocument(input, outputDir)
	if err != nil {
		logger.Fatalf("Extraction failed: %v", err)
	}
	if outPath == "" {
		logger.Warn("No faculty records found, nothing written",
			logging.Field{Key: logging.FieldInputFile, Value: input})
		return
	}

	logger.Info("Roster written",
		logging.Field{Key: logging.FieldOutputFile, Value: outPath},
		logging.Field{Key: logging.FieldRecords, Value: count})

	if root.Cfg.Output.OpenFiles {
		fileutils.OpenInViewer(outPath)
	}
}
