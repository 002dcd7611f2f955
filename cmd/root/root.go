// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rosterxtract/pdf-roster/internal/assembler"
	"rosterxtract/pdf-roster/internal/batch"
	"rosterxtract/pdf-roster/internal/config"
	"rosterxtract/pdf-roster/internal/fileutils"
	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/rosterparser"
	"rosterxtract/pdf-roster/internal/tabwriter"
	"rosterxtract/pdf-roster/internal/vocab"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, populated before any
	// command runs
	Cfg *config.Config

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pdf-roster",
		Short: "Extract faculty rosters from accreditation-disclosure PDFs.",
		Long: `pdf-roster extracts faculty roster tables from multi-page accreditation
disclosure PDFs and writes one normalized spreadsheet per institution.

Rows are classified and mapped onto the output schema by content-pattern
heuristics, since the source tables carry no reliable column headers.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf-roster!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			fileutils.SetLogger(Log)
			tabwriter.SetDelimiter([]rune(cfg.Output.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
}

// GetLogrusAdapter returns the shared logger wrapped in the logging interface
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// BuildProcessor assembles the extraction pipeline from the resolved
// configuration: vocabulary, parser, writer and batch processor.
func BuildProcessor() *batch.Processor {
	logger := GetLogrusAdapter()

	vocabulary := vocab.Default()
	if Cfg.Vocab.File != "" {
		loaded, err := vocab.Load(Cfg.Vocab.File)
		if err != nil {
			logger.WithError(err).Warn("Failed to load vocabulary file, using defaults",
				logging.Field{Key: logging.FieldFile, Value: Cfg.Vocab.File})
		} else {
			vocabulary = loaded
		}
	}

	parser := rosterparser.New(rosterparser.Options{
		Extractor:  rosterparser.NewTabulaExtractor(Cfg.Extractor.MinConfidence, logger),
		Vocabulary: vocabulary,
		Strict:     Cfg.Classifier.Strict,
		Logger:     logger,
	})

	logger.Debug("Pipeline configured",
		logging.Field{Key: logging.FieldFormat, Value: Cfg.Output.Format},
		logging.Field{Key: logging.FieldPolicy, Value: Cfg.Dedup.Policy})

	return batch.NewProcessor(parser, batch.Options{
		Policy:    assembler.ParsePolicy(Cfg.Dedup.Policy),
		Writer:    tabwriter.ForFormat(Cfg.Output.Format),
		OpenFiles: Cfg.Output.OpenFiles,
		MaxOpen:   Cfg.Output.MaxOpen,
		Logger:    logger,
	})
}
