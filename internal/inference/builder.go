package inference

import "rosterxtract/pdf-roster/internal/models"

// Field identifies one inferable field of a faculty record.
type Field string

const (
	FieldAge           Field = "age"
	FieldGender        Field = "gender"
	FieldDesignation   Field = "designation"
	FieldExperience    Field = "experience"
	FieldWorking       Field = "working"
	FieldJoiningDate   Field = "joining_date"
	FieldLeavingDate   Field = "leaving_date"
	FieldQualification Field = "qualification"
	FieldAssociation   Field = "association"
)

// builder accumulates a record during inference. The filled set enforces
// first-match-wins: once a field is set it is never overwritten. The builder
// is discarded when the record is finalized, so no mutable state outlives a
// row.
type builder struct {
	record models.FacultyRecord
	filled map[Field]bool
}

func newBuilder(serial, name, institution string) *builder {
	return &builder{
		record: models.FacultyRecord{
			SerialNo:    serial,
			Name:        name,
			Institution: institution,
		},
		filled: make(map[Field]bool),
	}
}

func (b *builder) has(f Field) bool {
	return b.filled[f]
}

// set assigns value to field unless the field is already filled. It reports
// whether the assignment happened.
func (b *builder) set(f Field, value string) bool {
	if b.filled[f] {
		return false
	}
	switch f {
	case FieldAge:
		b.record.Age = value
	case FieldGender:
		b.record.Gender = value
	case FieldDesignation:
		b.record.Designation = value
	case FieldExperience:
		b.record.Experience = value
	case FieldWorking:
		b.record.Working = value
	case FieldJoiningDate:
		b.record.JoiningDate = value
	case FieldLeavingDate:
		b.record.LeavingDate = value
	case FieldQualification:
		b.record.Qualification = value
	case FieldAssociation:
		b.record.Association = value
	default:
		return false
	}
	b.filled[f] = true
	return true
}

func (b *builder) finalize() models.FacultyRecord {
	return b.record
}
