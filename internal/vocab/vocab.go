// Package vocab holds the keyword vocabularies that drive row classification
// and field inference. The built-in defaults can be extended from a YAML file
// so that new designations or degree names can be recognized without a code
// change.
package vocab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary groups the keyword lists used by the heuristics. All terms are
// lowercase; matching is substring-based against lowercased cell text unless
// a rule states otherwise.
type Vocabulary struct {
	// Exclusion marks section headers and aggregate rows that must never be
	// treated as faculty records.
	Exclusion []string `yaml:"exclusion"`

	// Designation holds job-title keywords.
	Designation []string `yaml:"designation"`

	// Gender holds the exact (whole-cell) gender tokens.
	Gender []string `yaml:"gender"`

	// Experience holds duration/experience indicator keywords.
	Experience []string `yaml:"experience"`

	// Working holds employment-status keywords.
	Working []string `yaml:"working"`

	// Qualification holds degree keywords.
	Qualification []string `yaml:"qualification"`
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		Exclusion: []string{
			"total", "percentage", "built", "area", "laboratory", "playground",
			"establishment", "recognition", "accreditation", "department wise",
			"category wise", "grand total", "sub total", "overall", "summary",
		},
		Designation: []string{
			"professor", "lecturer", "assistant", "associate", "principal",
			"hod", "dean", "director", "registrar", "instructor", "demonstrator",
			"tutor", "fellow", "coordinator", "librarian",
		},
		Gender: []string{"m", "f", "male", "female", "man", "woman"},
		Experience: []string{
			"month", "year", "experience", "exp", "service", "teaching",
			"working", "employed", "tenure", "duration", "period", "months",
			"years", "yrs",
		},
		Working: []string{
			"yes", "no", "working", "current", "permanent", "temporary",
			"continuing", "resigned", "retired", "active", "inactive",
		},
		Qualification: []string{
			"phd", "ph.d", "doctorate", "mtech", "m.tech", "btech", "b.tech",
			"msc", "m.sc", "bsc", "b.sc", "mba", "mca", "diploma", "degree",
			"engineering", "medicine", "commerce", "arts", "science", "b.e",
			"m.e", "master", "bachelor", "pg", "ug",
		},
	}
}

// Load reads a YAML vocabulary file and merges it over the defaults. Lists
// present in the file extend the default lists; absent lists keep the
// defaults.
func Load(path string) (Vocabulary, error) {
	v := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user config
	if err != nil {
		return v, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var overrides Vocabulary
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return v, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	v.Exclusion = append(v.Exclusion, overrides.Exclusion...)
	v.Designation = append(v.Designation, overrides.Designation...)
	v.Gender = append(v.Gender, overrides.Gender...)
	v.Experience = append(v.Experience, overrides.Experience...)
	v.Working = append(v.Working, overrides.Working...)
	v.Qualification = append(v.Qualification, overrides.Qualification...)
	return v, nil
}
