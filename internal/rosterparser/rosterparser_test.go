package rosterparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/parsererror"
)

func ptr(s string) *string {
	return &s
}

func row(cells ...string) RawRow {
	r := make(RawRow, len(cells))
	for i := range cells {
		r[i] = ptr(cells[i])
	}
	return r
}

// headerRow is the kind of label row the classifier must reject.
func headerRow() RawRow {
	return row("S No", "Name of the Faculty", "Age", "Designation")
}

func newTestParser(pages []PageTables, strict bool) *Parser {
	return New(Options{
		Extractor: &MockExtractor{Pages: pages},
		Strict:    strict,
		Logger:    &logging.MockLogger{},
	})
}

func TestInstitutionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/Example College.pdf", "Example College"},
		{"roster.pdf", "roster"},
		{"dir/sub/ABC Institute.PDF", "ABC Institute"},
		{"noext", "noext"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, InstitutionFromPath(tc.path), tc.path)
	}
}

func TestParseFileEndToEnd(t *testing.T) {
	pages := []PageTables{
		{
			Page: 1,
			Tables: []RawTable{{
				headerRow(),
				row("1", "Jane Smith", "34", "Associate Professor", "F", "M.Tech", "48 months", "Yes"),
				row("2", "John Doe", "45", "Professor", "M", "Ph.D", "120 months", "Yes"),
				row("", "Grand Total", "2", "", "", "", "", ""),
			}},
		},
	}

	p := newTestParser(pages, true)
	records, err := p.ParseFile("/in/Example College.pdf")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Jane Smith", records[0].Name)
	assert.Equal(t, "Example College", records[0].Institution)
	assert.Equal(t, "4 years", records[0].Experience)
	assert.Equal(t, "John Doe", records[1].Name)
	assert.Equal(t, "10 years", records[1].Experience)
}

func TestParseFileDeduplicatesAcrossTables(t *testing.T) {
	// The same physical table detected twice on one page, plus a genuine
	// continuation on the next page.
	dup := RawTable{
		headerRow(),
		row("1", "Jane Smith", "34", "Professor", "F"),
	}
	pages := []PageTables{
		{Page: 1, Tables: []RawTable{dup, dup}},
		{Page: 2, Tables: []RawTable{{
			headerRow(),
			row("2", "John Doe", "45", "Lecturer", "M"),
		}}},
	}

	p := newTestParser(pages, true)
	records, err := p.ParseFile("Example College.pdf")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Jane Smith", records[0].Name)
	assert.Equal(t, "John Doe", records[1].Name)
}

func TestParseFileSkipsDegenerateTables(t *testing.T) {
	pages := []PageTables{
		{
			Page: 1,
			Tables: []RawTable{
				// Single-row table: no data beneath a header.
				{headerRow()},
				// Ragged rows and nil cells must not panic.
				{
					headerRow(),
					{ptr("1"), nil, ptr("34")},
					{},
					row("2", "John Doe", "45", "Lecturer", "M"),
				},
			},
		},
	}

	p := newTestParser(pages, true)
	records, err := p.ParseFile("x.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "John Doe", records[0].Name)
}

func TestParseFileSerialCeiling(t *testing.T) {
	pages := []PageTables{
		{Page: 1, Tables: []RawTable{{
			headerRow(),
			row("99999", "Jane Smith", "34", "Professor", "F"),
			row("3", "John Doe", "45", "Lecturer", "M"),
		}}},
	}

	// Loose mode lets the oversized serial past classification; the ceiling
	// check still drops the row.
	p := newTestParser(pages, false)
	records, err := p.ParseFile("x.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "John Doe", records[0].Name)
}

func TestParseFileSkipsFailedPages(t *testing.T) {
	pages := []PageTables{
		{Page: 1, Err: errors.New("table detection failed: bad content stream")},
		{Page: 2, Tables: []RawTable{{
			headerRow(),
			row("1", "Jane Smith", "34", "Professor", "F"),
		}}},
	}

	log := &logging.MockLogger{}
	p := New(Options{
		Extractor: &MockExtractor{Pages: pages},
		Strict:    true,
		Logger:    log,
	})

	records, err := p.ParseFile("x.pdf")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane Smith", records[0].Name)
	assert.True(t, log.HasMessage("Skipping page"))
}

func TestParseFileRejectsNonPDF(t *testing.T) {
	p := newTestParser(nil, true)

	_, err := p.ParseFile("/in/roster.docx")
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "PDF", formatErr.ExpectedFormat)
}

func TestParseFileExtractorFailure(t *testing.T) {
	p := New(Options{
		Extractor: &MockExtractor{Err: errors.New("encrypted document")},
		Logger:    &logging.MockLogger{},
	})

	_, err := p.ParseFile("/in/broken.pdf")
	require.Error(t, err)

	var docErr *parsererror.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "/in/broken.pdf", docErr.FilePath)
}

func TestParseFileNoPages(t *testing.T) {
	p := newTestParser(nil, true)
	records, err := p.ParseFile("empty.pdf")
	require.NoError(t, err)
	assert.Empty(t, records)
}
