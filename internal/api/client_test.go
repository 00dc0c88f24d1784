package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-portal/internal/common/config"
	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/session"
)

func testClient(t *testing.T, serverURL string) (*Client, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	cfg := config.APIConfig{
		BaseURL:         serverURL,
		Timeout:         5000,
		UploadTimeout:   5000,
		DownloadTimeout: 5000,
	}
	return NewClient(cfg, store, logger.NewTestLogger(t)), store
}

func TestClientAttachesAuthHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, store := testClient(t, server.URL)
	require.NoError(t, store.Save(&session.Session{AccessToken: "tok-abc"}))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/me", &out))

	assert.True(t, out.OK)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientSurfacesDetailMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Annual income exceeds the scholarship limit"}`))
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)
	err := client.Post(context.Background(), "/api/applications", map[string]int{"scholarship_id": 1}, nil)

	require.Error(t, err)
	assert.Equal(t, "Annual income exceeds the scholarship limit", errors.UserMessage(err))
}

func TestClientFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)
	err := client.Get(context.Background(), "/api/scholarships", nil)

	require.Error(t, err)
	assert.Equal(t, errors.GenericMessage, errors.UserMessage(err))
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Profile not found"}`))
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)
	err := client.Get(context.Background(), "/api/student/profile", nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestUnauthorizedFiresHandlerExactlyOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer server.Close()

	client, store := testClient(t, server.URL)
	require.NoError(t, store.Save(&session.Session{AccessToken: "stale"}))

	var fired int32
	client.SetUnauthorizedHandler(func() {
		atomic.AddInt32(&fired, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := client.Get(context.Background(), "/api/scholarships", nil)
			assert.True(t, errors.IsUnauthorized(err))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "handler must run once for a burst of 401s")

	current, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, current, "session must be cleared after a 401")
}

func TestResetUnauthorizedReArmsHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)

	var fired int32
	client.SetUnauthorizedHandler(func() {
		atomic.AddInt32(&fired, 1)
	})

	_ = client.Get(context.Background(), "/api/me", nil)
	_ = client.Get(context.Background(), "/api/me", nil)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))

	// Simulates a fresh login, after which an expiry must notify again.
	client.ResetUnauthorized()
	_ = client.Get(context.Background(), "/api/me", nil)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))
}

func TestUploadFileSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "income_cert.pdf", header.Filename)
		assert.Equal(t, "fake pdf bytes", string(content))
		assert.Equal(t, "3", r.FormValue("document_format_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)

	var out struct {
		ID int `json:"id"`
	}
	err := client.UploadFile(context.Background(), "/api/student/documents", "file", "income_cert.pdf",
		strings.NewReader("fake pdf bytes"),
		map[string]string{"document_format_id": "3"}, &out)

	require.NoError(t, err)
	assert.Equal(t, 42, out.ID)
}

func TestDownloadReturnsBytesAndContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 stub"))
	}))
	defer server.Close()

	client, _ := testClient(t, server.URL)
	data, contentType, err := client.Download(context.Background(), "/api/applications/5/merged-pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF-1.4 stub", string(data))
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/applications/:id/status", normalizeEndpoint("/api/applications/317/status"))
	assert.Equal(t, "/api/scholarships", normalizeEndpoint("/api/scholarships?active=true"))
	assert.Equal(t, "/api/me", normalizeEndpoint("/api/me"))
}
