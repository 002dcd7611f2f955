// Package inference maps the unlabeled cells of a classified faculty row
// onto the fixed record schema. There is no reliable column header in the
// source tables, so each cell is matched against an ordered list of
// content-pattern rules; the first rule whose target field is still unfilled
// consumes the cell. Cells that no rule claims are redistributed by a
// fallback pass.
package inference

import (
	"strconv"
	"strings"

	"rosterxtract/pdf-roster/internal/experience"
	"rosterxtract/pdf-roster/internal/models"
	"rosterxtract/pdf-roster/internal/textutils"
	"rosterxtract/pdf-roster/internal/vocab"
)

// firstDataCell is the index of the first cell beyond serial number and name.
const firstDataCell = 2

// Engine infers faculty record fields from normalized rows.
type Engine struct {
	vocabulary vocab.Vocabulary
	rules      []rule
}

// New returns an Engine using the given vocabulary.
func New(vocabulary vocab.Vocabulary) *Engine {
	e := &Engine{vocabulary: vocabulary}
	e.rules = e.buildRules()
	return e
}

// Infer builds a FacultyRecord from a row that passed classification. The
// serial number has already been parsed by the caller; institution is
// constant for all rows of one source file. The second return value is false
// when the row yields no usable record (no name), in which case the row is
// simply dropped.
func (e *Engine) Infer(row []string, serial int, institution string) (models.FacultyRecord, bool) {
	name := ""
	if len(row) > 1 {
		name = row[1]
	}
	if name == "" {
		return models.FacultyRecord{}, false
	}

	b := newBuilder(strconv.Itoa(serial), name, institution)

	for i := firstDataCell; i < len(row); i++ {
		cell := row[i]
		if skippable(cell) {
			continue
		}
		for _, r := range e.rules {
			if r.apply(b, cell) {
				break
			}
		}
	}

	e.redistribute(b, row)

	return b.finalize(), true
}

// skippable filters empty cells and the textual null artifacts some table
// extractors emit.
func skippable(cell string) bool {
	if cell == "" {
		return true
	}
	lower := strings.ToLower(cell)
	return lower == "nan" || lower == "none"
}

// redistribute runs the fallback pass: cells that no rule consumed (their
// text does not appear on the record verbatim) fill the remaining gaps in
// experience, qualification and association type, in that order.
func (e *Engine) redistribute(b *builder, row []string) {
	var leftovers []string
	for i := firstDataCell; i < len(row); i++ {
		cell := row[i]
		if skippable(cell) || len(cell) <= 1 || b.record.ContainsValue(cell) {
			continue
		}
		leftovers = append(leftovers, cell)
	}

	if !b.has(FieldExperience) {
		for i, cell := range leftovers {
			n, ok := textutils.ExtractNumber(cell)
			if !ok || n < minExperienceMonths || n > maxExperienceMonths {
				continue
			}
			if n >= minAge && n <= maxAge {
				continue
			}
			b.set(FieldExperience, experience.Normalize(cell))
			leftovers = append(leftovers[:i], leftovers[i+1:]...)
			break
		}
	}

	if !b.has(FieldQualification) {
		for i, cell := range leftovers {
			if len(cell) > 2 && len(cell) < 100 {
				b.set(FieldQualification, cell)
				leftovers = append(leftovers[:i], leftovers[i+1:]...)
				break
			}
		}
	}

	if !b.has(FieldAssociation) {
		for _, cell := range leftovers {
			if len(cell) > 1 {
				b.set(FieldAssociation, cell)
				break
			}
		}
	}
}
