// Package classifier decides whether a normalized table row is a candidate
// faculty record or noise (headers, totals, section markers). The source PDFs
// carry no reliable machine-readable header, so classification works purely
// from the shape and content of the row.
package classifier

import (
	"strings"

	"rosterxtract/pdf-roster/internal/textutils"
	"rosterxtract/pdf-roster/internal/vocab"
)

// Limits for the candidate serial and name cells.
const (
	maxSerialLen = 10
	minSerial    = 1
	maxSerial    = 9999
	minNameLen   = 2
	maxNameLen   = 100

	// exclusionSpan is how many leading cells are scanned for exclusion terms.
	exclusionSpan = 5

	// minNonEmpty guards against rows that are mostly blank artifacts of
	// merged PDF cells. Only enforced in strict mode.
	minNonEmpty = 3
)

// Classifier holds the configuration for row classification.
type Classifier struct {
	vocabulary vocab.Vocabulary

	// strict additionally requires the parsed serial to lie in
	// [minSerial, maxSerial] and the row to have at least minNonEmpty
	// non-empty cells.
	strict bool
}

// New returns a Classifier using the given vocabulary. Strict mode is the
// default used by the pipeline; loose mode accepts any digit-bearing serial
// cell and rows with fewer populated cells.
func New(vocabulary vocab.Vocabulary, strict bool) *Classifier {
	return &Classifier{vocabulary: vocabulary, strict: strict}
}

// IsFacultyRow reports whether row could represent one faculty member.
func (c *Classifier) IsFacultyRow(row []string) bool {
	if len(row) < 2 {
		return false
	}

	serial := row[0]
	if serial == "" || len(serial) > maxSerialLen || !textutils.HasDigits(serial) {
		return false
	}
	if c.strict {
		n, ok := textutils.ExtractNumber(serial)
		if !ok || n < minSerial || n > maxSerial {
			return false
		}
	}

	name := row[1]
	if len(name) < minNameLen || len(name) > maxNameLen || !textutils.HasLetterRun(name) {
		return false
	}

	span := row
	if len(span) > exclusionSpan {
		span = span[:exclusionSpan]
	}
	joined := strings.ToLower(strings.Join(span, " "))
	for _, term := range c.vocabulary.Exclusion {
		if strings.Contains(joined, term) {
			return false
		}
	}

	if c.strict {
		nonEmpty := 0
		for _, cell := range row {
			if cell != "" {
				nonEmpty++
			}
		}
		if nonEmpty < minNonEmpty {
			return false
		}
	}

	return true
}
