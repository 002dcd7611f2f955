// Package assembler merges per-page faculty records into one ordered,
// deduplicated table per institution and assigns the final dense serial
// numbers.
package assembler

import (
	"sort"
	"strconv"
	"strings"

	"rosterxtract/pdf-roster/internal/models"
)

// Policy selects the duplicate key used for the final table.
type Policy string

const (
	// PolicyInstitutionName treats two records with the same lowercased
	// name within one institution as duplicates. This is the default.
	PolicyInstitutionName Policy = "institution-name"

	// PolicyNameSerial additionally distinguishes records by their original
	// serial number, so two different rows that share a name survive.
	PolicyNameSerial Policy = "name-serial"
)

// missingSerialSentinel sorts records with non-numeric or absent serials
// after everything else.
const missingSerialSentinel = 999999

// ParsePolicy maps a configuration string onto a Policy, defaulting to
// PolicyInstitutionName for unknown values.
func ParsePolicy(s string) Policy {
	if Policy(s) == PolicyNameSerial {
		return PolicyNameSerial
	}
	return PolicyInstitutionName
}

// Accumulator collects the records produced across all pages of one source
// document. Records whose (lowercased name, serial) pair was already seen are
// dropped, which absorbs the duplicate tables that alternate extraction
// strategies return for the same page.
type Accumulator struct {
	records []models.FacultyRecord
	seen    map[string]bool
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: make(map[string]bool)}
}

// Add appends rec unless it duplicates an earlier record. It reports whether
// the record was kept.
func (a *Accumulator) Add(rec models.FacultyRecord) bool {
	key := nameKey(rec.Name) + "\x00" + rec.SerialNo
	if a.seen[key] {
		return false
	}
	a.seen[key] = true
	a.records = append(a.records, rec)
	return true
}

// Len returns the number of records accumulated so far.
func (a *Accumulator) Len() int {
	return len(a.records)
}

// Records returns the accumulated records in encounter order.
func (a *Accumulator) Records() []models.FacultyRecord {
	return a.records
}

// Assemble produces the final table for one institution: duplicates are
// dropped keep-first per policy, survivors are stably sorted by their
// original serial number interpreted numerically, and a dense Final Serial
// 1..N is assigned over the sorted sequence. The original "S No" is retained
// verbatim as provenance.
func Assemble(institution string, records []models.FacultyRecord, policy Policy) models.Roster {
	seen := make(map[string]bool, len(records))
	var kept []models.FacultyRecord
	for _, rec := range records {
		key := dedupKey(rec, policy)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, rec)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return serialValue(kept[i].SerialNo) < serialValue(kept[j].SerialNo)
	})

	for i := range kept {
		kept[i].FinalSerial = i + 1
	}

	return models.Roster{Institution: institution, Records: kept}
}

func dedupKey(rec models.FacultyRecord, policy Policy) string {
	if policy == PolicyNameSerial {
		return nameKey(rec.Name) + "\x00" + rec.SerialNo
	}
	return nameKey(rec.Name)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func serialValue(serial string) int {
	n, err := strconv.Atoi(strings.TrimSpace(serial))
	if err != nil {
		return missingSerialSentinel
	}
	return n
}
