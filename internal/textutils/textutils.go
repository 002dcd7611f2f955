// Package textutils provides cell normalization and numeric extraction
// utilities used by the classification and inference heuristics.
package textutils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	digitRunRe    = regexp.MustCompile(`\d+`)
	decimalRe     = regexp.MustCompile(`\d+\.\d+`)
	lettersRe     = regexp.MustCompile(`[a-zA-Z]{2,}`)
	longAlphaRe   = regexp.MustCompile(`[a-zA-Z]{3,}`)
	numericOnlyRe = regexp.MustCompile(`^\d+$`)
)

// NormalizeCell cleans a raw extracted cell into a canonical token: line
// breaks become spaces, runs of whitespace collapse to one space, and
// leading/trailing space is trimmed. It is pure and total; nil input maps
// to the empty string.
func NormalizeCell(cell *string) string {
	if cell == nil {
		return ""
	}
	s := strings.ReplaceAll(*cell, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeString is NormalizeCell for callers that already hold a string.
func NormalizeString(cell string) string {
	return NormalizeCell(&cell)
}

// NormalizeRow normalizes every cell of a raw row, preserving length and
// positions.
func NormalizeRow(raw []*string) []string {
	row := make([]string, len(raw))
	for i, cell := range raw {
		row[i] = NormalizeCell(cell)
	}
	return row
}

// ExtractNumber returns the first run of digits in text parsed as an integer.
// The second return value is false when text holds no digits or the run does
// not fit in an int.
func ExtractNumber(text string) (int, bool) {
	run := digitRunRe.FindString(text)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractDecimal returns the first decimal number of the form \d+.\d+ found
// in text.
func ExtractDecimal(text string) (float64, bool) {
	m := decimalRe.FindString(text)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// HasDigits reports whether text contains at least one digit.
func HasDigits(text string) bool {
	return digitRunRe.MatchString(text)
}

// HasLetterRun reports whether text contains a run of at least two alphabetic
// characters.
func HasLetterRun(text string) bool {
	return lettersRe.MatchString(text)
}

// HasLongLetterRun reports whether text contains a run of at least three
// alphabetic characters.
func HasLongLetterRun(text string) bool {
	return longAlphaRe.MatchString(text)
}

// IsNumericOnly reports whether text consists solely of digits.
func IsNumericOnly(text string) bool {
	return numericOnlyRe.MatchString(text)
}

// ContainsAny reports whether the lowercased text contains any of the given
// lowercase terms.
func ContainsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
