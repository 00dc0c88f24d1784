package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/common/logger"
)

type fakeExportBackend struct {
	csvCalls int
	pdfCalls int
}

func (f *fakeExportBackend) ExportCSV(_ context.Context, exportType string) ([]byte, string, error) {
	f.csvCalls++
	return []byte("id,name\n1,Asha\n"), "text/csv", nil
}

func (f *fakeExportBackend) ApplicationPDF(_ context.Context, id int) ([]byte, string, error) {
	f.pdfCalls++
	return []byte("%PDF-1.4 stub"), "application/pdf", nil
}

func TestSaveCSVWritesFile(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeExportBackend{}
	s := NewExportService(backend, dir, logger.NewTestLogger(t))

	path, err := s.SaveCSV(context.Background(), "applicants")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "applicants_")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Asha")
}

func TestSaveCSVRejectsUnknownType(t *testing.T) {
	backend := &fakeExportBackend{}
	s := NewExportService(backend, t.TempDir(), logger.NewTestLogger(t))

	_, err := s.SaveCSV(context.Background(), "everything")
	require.Error(t, err)
	assert.Zero(t, backend.csvCalls)
}

func TestSaveApplicationPDF(t *testing.T) {
	dir := t.TempDir()
	s := NewExportService(&fakeExportBackend{}, dir, logger.NewTestLogger(t))

	path, err := s.SaveApplicationPDF(context.Background(), 55)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "application_55.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%PDF")
}
