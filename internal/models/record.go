// Package models defines the data structures shared across the extraction
// pipeline.
package models

// FacultyRecord is the canonical entity produced for one faculty member.
// All fields are free text as extracted from the source; empty string means
// the field could not be inferred for that row. The csv tags drive the CSV
// output format and their values are the fixed output column names.
type FacultyRecord struct {
	FinalSerial   int    `csv:"Final Serial"`
	SerialNo      string `csv:"S No"`
	Name          string `csv:"Name"`
	Age           string `csv:"Age"`
	Designation   string `csv:"Designation"`
	Gender        string `csv:"Gender"`
	Qualification string `csv:"Qualification"`
	Experience    string `csv:"Experience (in years)"`
	Working       string `csv:"Currently working with institution?"`
	JoiningDate   string `csv:"Joining Date"`
	LeavingDate   string `csv:"Leaving Date"`
	Association   string `csv:"Association type"`
	Institution   string `csv:"Institution name"`
}

// OutputColumns is the fixed output schema in column order. Both the XLSX and
// the CSV writers emit exactly these headers.
var OutputColumns = []string{
	"Final Serial",
	"S No",
	"Name",
	"Age",
	"Designation",
	"Gender",
	"Qualification",
	"Experience (in years)",
	"Currently working with institution?",
	"Joining Date",
	"Leaving Date",
	"Association type",
	"Institution name",
}

// Values returns the record's fields in output column order, with the final
// serial already rendered as a number.
func (r FacultyRecord) Values() []interface{} {
	return []interface{}{
		r.FinalSerial,
		r.SerialNo,
		r.Name,
		r.Age,
		r.Designation,
		r.Gender,
		r.Qualification,
		r.Experience,
		r.Working,
		r.JoiningDate,
		r.LeavingDate,
		r.Association,
		r.Institution,
	}
}

// ContainsValue reports whether any populated field of the record equals v.
// The inference engine uses this to avoid assigning the same cell text twice.
func (r FacultyRecord) ContainsValue(v string) bool {
	if v == "" {
		return false
	}
	for _, field := range []string{
		r.SerialNo, r.Name, r.Age, r.Designation, r.Gender, r.Qualification,
		r.Experience, r.Working, r.JoiningDate, r.LeavingDate, r.Association,
		r.Institution,
	} {
		if field == v {
			return true
		}
	}
	return false
}

// Roster is the final, deduplicated table for one institution.
type Roster struct {
	Institution string
	Records     []FacultyRecord
}
