package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterxtract/pdf-roster/internal/logging"
	"rosterxtract/pdf-roster/internal/models"
	"rosterxtract/pdf-roster/internal/tabwriter"
)

// fakeParser returns canned records per path, or an error for paths listed
// in failing.
type fakeParser struct {
	records map[string][]models.FacultyRecord
	failing map[string]error
}

func (f *fakeParser) ParseFile(path string) ([]models.FacultyRecord, error) {
	if err, ok := f.failing[filepath.Base(path)]; ok {
		return nil, err
	}
	return f.records[filepath.Base(path)], nil
}

func someRecords(institution string, names ...string) []models.FacultyRecord {
	var recs []models.FacultyRecord
	for i, name := range names {
		recs = append(recs, models.FacultyRecord{
			SerialNo:    string(rune('1' + i)),
			Name:        name,
			Institution: institution,
		})
	}
	return recs
}

func touchPDFs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o600))
	}
}

func TestProcessDocument(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	touchPDFs(t, inDir, "Example College.pdf")

	parser := &fakeParser{records: map[string][]models.FacultyRecord{
		"Example College.pdf": someRecords("Example College", "Jane Smith", "John Doe", "jane smith"),
	}}
	p := NewProcessor(parser, Options{
		Writer: tabwriter.NewCSVWriter(),
		Logger: &logging.MockLogger{},
	})

	outPath, count, err := p.ProcessDocument(filepath.Join(inDir, "Example College.pdf"), outDir)
	require.NoError(t, err)

	// The duplicate name is collapsed by the default policy.
	assert.Equal(t, 2, count)
	assert.Equal(t, filepath.Join(outDir, "Example College_Faculty_Data.csv"), outPath)
	assert.FileExists(t, outPath)
}

func TestProcessDocumentNoRecords(t *testing.T) {
	log := &logging.MockLogger{}
	p := NewProcessor(&fakeParser{}, Options{
		Writer: tabwriter.NewCSVWriter(),
		Logger: log,
	})

	outPath, count, err := p.ProcessDocument("/in/empty.pdf", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, outPath)
	assert.Zero(t, count)
	assert.True(t, log.HasMessage("No faculty data found"))
}

func TestProcessDirectory(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	touchPDFs(t, inDir, "College A.pdf", "College B.pdf", "Broken.pdf", "notes.txt")

	parser := &fakeParser{
		records: map[string][]models.FacultyRecord{
			"College A.pdf": someRecords("College A", "Jane Smith"),
			"College B.pdf": someRecords("College B", "John Doe", "Mary Major"),
		},
		failing: map[string]error{
			"Broken.pdf": errors.New("encrypted document"),
		},
	}
	log := &logging.MockLogger{}
	p := NewProcessor(parser, Options{
		Writer: tabwriter.NewCSVWriter(),
		Logger: log,
	})

	summary, err := p.ProcessDirectory(inDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, outDir, summary.OutputDir)
	assert.Equal(t, 3, summary.Documents)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 3, summary.TotalRecords)
	require.Len(t, summary.FilesCreated, 2)
	for _, f := range summary.FilesCreated {
		assert.FileExists(t, f)
	}
	assert.True(t, log.HasMessage("Batch extraction complete"))
}

func TestProcessDirectoryEmpty(t *testing.T) {
	log := &logging.MockLogger{}
	p := NewProcessor(&fakeParser{}, Options{
		Writer: tabwriter.NewCSVWriter(),
		Logger: log,
	})

	summary, err := p.ProcessDirectory(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, summary.Documents)
	assert.Empty(t, summary.FilesCreated)
	assert.True(t, log.HasMessage("No PDF files found in input directory"))
}

func TestProcessDirectoryMissingInput(t *testing.T) {
	p := NewProcessor(&fakeParser{}, Options{
		Writer: tabwriter.NewCSVWriter(),
		Logger: &logging.MockLogger{},
	})

	_, err := p.ProcessDirectory(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}
