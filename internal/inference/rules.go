package inference

import (
	"regexp"
	"strconv"
	"strings"

	"rosterxtract/pdf-roster/internal/experience"
	"rosterxtract/pdf-roster/internal/textutils"
)

// Plausibility bounds used by the age and experience rules.
const (
	minAge = 18
	maxAge = 80

	// Experience expressed in months: one month up to fifty years.
	minExperienceMonths = 1
	maxExperienceMonths = 600

	// Experience expressed directly in years as a decimal number.
	minExperienceYears = 0.1
	maxExperienceYears = 50.0
)

// RuleOrder is the fixed priority order in which field-detection rules are
// tried against each cell. The first matching rule whose target field is
// still unfilled consumes the cell. Several rules overlap (a four-digit
// number matches both the date and experience detectors), so reordering this
// list changes extraction results; it is deliberately a first-class constant
// covered by tests.
var RuleOrder = []string{
	"age",
	"gender",
	"designation",
	"experience",
	"working",
	"dates",
	"qualification",
	"association",
}

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`), // DD/MM/YYYY or DD-MM-YYYY
		regexp.MustCompile(`\d{1,2}\s+\w+\s+\d{2,4}`),       // DD Month YYYY
		regexp.MustCompile(`\w+\s+\d{1,2},?\s+\d{2,4}`),     // Month DD, YYYY
		regexp.MustCompile(`\d{2,4}[/-]\d{1,2}[/-]\d{1,2}`), // YYYY/MM/DD
		regexp.MustCompile(`\d{4}-\d{2}`),                   // YYYY-MM
	}
	yearRe       = regexp.MustCompile(`\d{4}`)
	degreeAbbrRe = regexp.MustCompile(`[bm]\.[a-z]{2,}`)
)

// rule is one (predicate, assignment) pair. apply reports whether the cell
// was consumed.
type rule struct {
	name  string
	apply func(b *builder, cell string) bool
}

// rules builds the engine's rule list in RuleOrder.
func (e *Engine) buildRules() []rule {
	byName := map[string]func(b *builder, cell string) bool{
		"age":           e.applyAge,
		"gender":        e.applyGender,
		"designation":   e.applyDesignation,
		"experience":    e.applyExperience,
		"working":       e.applyWorking,
		"dates":         e.applyDates,
		"qualification": e.applyQualification,
		"association":   e.applyAssociation,
	}
	rules := make([]rule, 0, len(RuleOrder))
	for _, name := range RuleOrder {
		rules = append(rules, rule{name: name, apply: byName[name]})
	}
	return rules
}

// applyAge fires on a short cell whose leading digit run is a plausible age.
// The length guard keeps two-digit numbers embedded in longer descriptive
// strings from being read as ages.
func (e *Engine) applyAge(b *builder, cell string) bool {
	if b.has(FieldAge) {
		return false
	}
	n, ok := textutils.ExtractNumber(cell)
	if !ok || n < minAge || n > maxAge || len(cell) > 3 {
		return false
	}
	return b.set(FieldAge, strconv.Itoa(n))
}

// applyGender fires on an exact gender token. Single-letter tokens are stored
// uppercased; longer tokens keep their original spelling.
func (e *Engine) applyGender(b *builder, cell string) bool {
	if b.has(FieldGender) {
		return false
	}
	lower := strings.ToLower(cell)
	match := false
	for _, token := range e.vocabulary.Gender {
		if lower == token {
			match = true
			break
		}
	}
	if !match {
		return false
	}
	upper := strings.ToUpper(cell)
	if upper == "M" || upper == "F" {
		return b.set(FieldGender, upper)
	}
	return b.set(FieldGender, cell)
}

func (e *Engine) applyDesignation(b *builder, cell string) bool {
	if b.has(FieldDesignation) {
		return false
	}
	if !textutils.ContainsAny(cell, e.vocabulary.Designation) {
		return false
	}
	return b.set(FieldDesignation, cell)
}

// applyExperience tries three sub-patterns in order: digits plus a duration
// keyword, a bare digit run outside the age band, and a decimal year count.
func (e *Engine) applyExperience(b *builder, cell string) bool {
	if b.has(FieldExperience) {
		return false
	}

	hasNumber := textutils.HasDigits(cell)
	if hasNumber && textutils.ContainsAny(cell, e.vocabulary.Experience) {
		return b.set(FieldExperience, experience.Normalize(cell))
	}

	if hasNumber {
		if n, ok := textutils.ExtractNumber(cell); ok {
			inAgeBand := n >= minAge && n <= maxAge
			if !inAgeBand && n >= minExperienceMonths && n <= maxExperienceMonths {
				return b.set(FieldExperience, experience.Normalize(cell))
			}
		}
	}

	if f, ok := textutils.ExtractDecimal(cell); ok {
		if f >= minExperienceYears && f <= maxExperienceYears {
			return b.set(FieldExperience, experience.FormatYears(f))
		}
	}

	return false
}

func (e *Engine) applyWorking(b *builder, cell string) bool {
	if b.has(FieldWorking) {
		return false
	}
	if !textutils.ContainsAny(cell, e.vocabulary.Working) {
		return false
	}
	return b.set(FieldWorking, cell)
}

// applyDates fills Joining Date with the first date-like cell and Leaving
// Date with the second, in row order. Any cell containing a four-digit number
// counts as date-like, which deliberately overlaps with the experience rule;
// priority order resolves the ambiguity.
func (e *Engine) applyDates(b *builder, cell string) bool {
	if b.has(FieldJoiningDate) && b.has(FieldLeavingDate) {
		return false
	}
	isDate := yearRe.MatchString(cell)
	if !isDate {
		for _, re := range datePatterns {
			if re.MatchString(cell) {
				isDate = true
				break
			}
		}
	}
	if !isDate {
		return false
	}
	if !b.has(FieldJoiningDate) {
		return b.set(FieldJoiningDate, cell)
	}
	return b.set(FieldLeavingDate, cell)
}

// applyQualification recognizes degree keywords, short degree abbreviations
// like "B.Tech", and as a last resort any plausible free-text token. The
// free-text disjunct is intentionally broad and is the lowest-confidence
// rule in the engine.
func (e *Engine) applyQualification(b *builder, cell string) bool {
	if b.has(FieldQualification) {
		return false
	}
	lower := strings.ToLower(cell)
	hasQual := textutils.ContainsAny(cell, e.vocabulary.Qualification) ||
		degreeAbbrRe.MatchString(lower) ||
		(len(cell) > 2 && len(cell) < 50 && textutils.HasLongLetterRun(cell))
	if !hasQual {
		return false
	}
	return b.set(FieldQualification, cell)
}

// applyAssociation is the catch-all for leftover meaningful text.
func (e *Engine) applyAssociation(b *builder, cell string) bool {
	if b.has(FieldAssociation) {
		return false
	}
	if len(cell) <= 2 || len(cell) >= 100 || textutils.IsNumericOnly(cell) {
		return false
	}
	if b.record.ContainsValue(cell) {
		return false
	}
	return b.set(FieldAssociation, cell)
}
