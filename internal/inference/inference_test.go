package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterxtract/pdf-roster/internal/vocab"
)

func newEngine() *Engine {
	return New(vocab.Default())
}

func TestInferFullRow(t *testing.T) {
	e := newEngine()

	row := []string{
		"3", "Jane Smith", "34", "Associate Professor", "F", "M.Tech",
		"48 months", "Yes", "12/2019", "", "Regular",
	}
	rec, ok := e.Infer(row, 3, "Example College")
	require.True(t, ok)

	assert.Equal(t, "3", rec.SerialNo)
	assert.Equal(t, "Jane Smith", rec.Name)
	assert.Equal(t, "Example College", rec.Institution)
	assert.Equal(t, "34", rec.Age)
	assert.Equal(t, "Associate Professor", rec.Designation)
	assert.Equal(t, "F", rec.Gender)
	assert.Equal(t, "M.Tech", rec.Qualification)
	assert.Equal(t, "4 years", rec.Experience)
	assert.Equal(t, "Yes", rec.Working)
	assert.Equal(t, "12/2019", rec.JoiningDate)
	assert.Equal(t, "", rec.LeavingDate)
	assert.Equal(t, "Regular", rec.Association)
}

func TestInferEmptyNameDropsRow(t *testing.T) {
	e := newEngine()

	_, ok := e.Infer([]string{"5", "", "34", "M"}, 5, "Example College")
	assert.False(t, ok)

	_, ok = e.Infer([]string{"5"}, 5, "Example College")
	assert.False(t, ok)
}

func TestInferFirstMatchWins(t *testing.T) {
	e := newEngine()

	// Two age-like cells: only the first becomes the age, the second falls
	// through to the later rules.
	row := []string{"1", "John Doe", "34", "45"}
	rec, ok := e.Infer(row, 1, "Inst")
	require.True(t, ok)
	assert.Equal(t, "34", rec.Age)
	assert.NotEqual(t, "45", rec.Age)
}

func TestInferDateOrdering(t *testing.T) {
	e := newEngine()

	// Once experience is filled, the first date-like cell is the joining
	// date and the second the leaving date.
	row := []string{"2", "John Doe", "34", "48 months", "12/2019", "05/2023"}
	rec, ok := e.Infer(row, 2, "Inst")
	require.True(t, ok)
	assert.Equal(t, "12/2019", rec.JoiningDate)
	assert.Equal(t, "05/2023", rec.LeavingDate)
}

func TestInferExperienceVariants(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{"months with keyword", "18 months", "1.5 years"},
		{"bare month count", "120", "10 years"},
		{"decimal years", "0.5", "0.5 years"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := e.Infer([]string{"1", "John Doe", tc.cell}, 1, "Inst")
			require.True(t, ok)
			assert.Equal(t, tc.want, rec.Experience)
		})
	}
}

func TestInferAgeBandExcludedFromBareExperience(t *testing.T) {
	e := newEngine()

	// A bare number inside the plausible age band never becomes experience.
	rec, ok := e.Infer([]string{"1", "John Doe", "34", "40"}, 1, "Inst")
	require.True(t, ok)
	assert.Equal(t, "34", rec.Age)
	assert.Empty(t, rec.Experience)
}

func TestInferGenderTokens(t *testing.T) {
	e := newEngine()

	tests := []struct {
		cell string
		want string
	}{
		{"m", "M"},
		{"F", "F"},
		{"Female", "Female"},
	}

	for _, tc := range tests {
		rec, ok := e.Infer([]string{"1", "John Doe", tc.cell}, 1, "Inst")
		require.True(t, ok)
		assert.Equal(t, tc.want, rec.Gender, "token %q", tc.cell)
	}
}

func TestInferSkipsNullArtifacts(t *testing.T) {
	e := newEngine()

	rec, ok := e.Infer([]string{"1", "John Doe", "nan", "NONE", ""}, 1, "Inst")
	require.True(t, ok)
	assert.Empty(t, rec.Age)
	assert.Empty(t, rec.Qualification)
	assert.Empty(t, rec.Association)
}

func TestFreeTextFallsToQualification(t *testing.T) {
	e := newEngine()

	row := []string{"1", "John Doe", "Visiting Staff Member"}
	rec, ok := e.Infer(row, 1, "Inst")
	require.True(t, ok)
	assert.Equal(t, "Visiting Staff Member", rec.Qualification)
}

func TestRedistributeReusesTransformedCell(t *testing.T) {
	e := newEngine()

	// The experience rule stores "130 months" as "10.8 years", so the raw
	// cell text no longer appears on the record and the fallback pass treats
	// it as a leftover, handing it to the still-empty qualification field.
	row := []string{"1", "John Doe", "130 months"}
	rec, ok := e.Infer(row, 1, "Inst")
	require.True(t, ok)
	assert.Equal(t, "10.8 years", rec.Experience)
	assert.Equal(t, "130 months", rec.Qualification)
}

func TestRuleOrderIsStable(t *testing.T) {
	want := []string{
		"age", "gender", "designation", "experience",
		"working", "dates", "qualification", "association",
	}
	assert.Equal(t, want, RuleOrder)

	e := newEngine()
	require.Len(t, e.rules, len(RuleOrder))
	for i, r := range e.rules {
		assert.Equal(t, RuleOrder[i], r.name)
	}
}
