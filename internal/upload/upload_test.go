package upload

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/models"
)

type fakeUploadBackend struct {
	calls int
	err   error
	last  struct {
		fileName     string
		formatID     int
		documentType string
		content      string
	}
}

func (f *fakeUploadBackend) UploadDocument(_ context.Context, fileName string, file io.Reader, formatID int, documentType string) (*models.StudentDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	data, _ := io.ReadAll(file)
	f.last.fileName = fileName
	f.last.formatID = formatID
	f.last.documentType = documentType
	f.last.content = string(data)
	return &models.StudentDocument{ID: 1, DocumentFormatID: formatID}, nil
}

func defaultUploader(t *testing.T) (*Uploader, *fakeUploadBackend) {
	t.Helper()
	backend := &fakeUploadBackend{}
	v := NewValidator([]string{"pdf", "jpg", "jpeg", "png"})
	return NewUploader(backend, v, logger.NewTestLogger(t)), backend
}

func TestKindOf(t *testing.T) {
	jpg, ok := KindOf("photo.JPG")
	require.True(t, ok)
	jpeg, ok2 := KindOf("photo.jpeg")
	require.True(t, ok2)
	assert.Equal(t, jpg, jpeg, "jpg and jpeg are the same kind")

	_, ok = KindOf("notes.docx")
	assert.False(t, ok)
	_, ok = KindOf("noextension")
	assert.False(t, ok)
}

func TestRejectionNeverReachesNetworkAndClearsSelection(t *testing.T) {
	u, backend := defaultUploader(t)

	require.NoError(t, u.Select("ok.pdf", strings.NewReader("x")))
	require.NotNil(t, u.Selected())

	err := u.Select("virus.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, errors.UserMessage(err), "pdf")
	assert.Nil(t, u.Selected(), "rejection clears the previous selection too")
	assert.Zero(t, backend.calls)
}

func TestValidatorRespectsConfiguredSubset(t *testing.T) {
	v := NewValidator([]string{"pdf"})
	assert.NoError(t, v.Validate("a.pdf"))
	assert.Error(t, v.Validate("a.png"))
}

func TestSubmitSendsMetadataAndClearsSelection(t *testing.T) {
	u, backend := defaultUploader(t)
	require.NoError(t, u.Select("income.pdf", strings.NewReader("pdf bytes")))

	refreshed := 0
	doc, err := u.Submit(context.Background(), 10, "Income Certificate", func(context.Context) error {
		refreshed++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 10, doc.DocumentFormatID)
	assert.Equal(t, "income.pdf", backend.last.fileName)
	assert.Equal(t, "Income Certificate", backend.last.documentType)
	assert.Equal(t, "pdf bytes", backend.last.content)
	assert.Equal(t, 1, refreshed, "success triggers exactly one refresh")
	assert.Nil(t, u.Selected())
}

func TestSubmitFailureKeepsSelectionForRetry(t *testing.T) {
	u, backend := defaultUploader(t)
	backend.err = errors.FromStatus(422, "File too large")
	require.NoError(t, u.Select("income.pdf", strings.NewReader("x")))

	_, err := u.Submit(context.Background(), 10, "", nil)
	require.Error(t, err)
	assert.Equal(t, "File too large", errors.UserMessage(err))
	assert.NotNil(t, u.Selected())
}

func TestSubmitWithoutSelection(t *testing.T) {
	u, backend := defaultUploader(t)
	_, err := u.Submit(context.Background(), 10, "", nil)
	assert.Error(t, err)
	assert.Zero(t, backend.calls)
}
