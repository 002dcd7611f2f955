package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldInstitution = "institution"
	FieldPage        = "page"
	FieldTable       = "table"
	FieldCount       = "count"
	FieldRecords     = "records"
	FieldReason      = "reason"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldOutputDir   = "output_dir"
	FieldFormat      = "format"
	FieldPolicy      = "policy"
)
