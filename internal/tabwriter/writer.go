// Package tabwriter persists assembled rosters as tabular files, one file
// per institution.
package tabwriter

import (
	"path/filepath"
	"regexp"

	"rosterxtract/pdf-roster/internal/models"
)

// fileSuffix is appended to the sanitized institution name for every output
// file.
const fileSuffix = "_Faculty_Data"

// unsafeChars are the characters replaced in institution names before they
// become file names.
var unsafeChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Writer persists one institution's roster and returns the path written.
type Writer interface {
	Write(roster models.Roster, outputDir string) (string, error)
}

// SanitizeInstitution makes an institution name safe for use as a file name.
func SanitizeInstitution(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// OutputPath builds the output file path for an institution in outputDir
// with the given extension (without dot).
func OutputPath(outputDir, institution, ext string) string {
	return filepath.Join(outputDir, SanitizeInstitution(institution)+fileSuffix+"."+ext)
}

// ForFormat returns the Writer for a configured output format. Unknown
// formats fall back to XLSX, the primary output format.
func ForFormat(format string) Writer {
	if format == "csv" {
		return NewCSVWriter()
	}
	return NewXLSXWriter()
}
