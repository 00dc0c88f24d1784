// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"scholar-portal/internal/common/config"
	"scholar-portal/internal/common/errors"
	"scholar-portal/internal/common/logger"
	"scholar-portal/internal/common/metrics"
	"scholar-portal/internal/session"
)

// Client wraps every request to the backend API. It attaches the stored
// bearer token, normalizes error payloads into APIError values, records
// request metrics and traces, and centralizes 401 handling so the session
// is cleared and the logout hook fires exactly once per login.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	uploadClient   *http.Client
	downloadClient *http.Client
	store          session.Store
	logger         logger.Logger
	tracer         trace.Tracer

	mu               sync.Mutex
	unauthorizedOnce *sync.Once
	onUnauthorized   func()
}

func NewClient(cfg config.APIConfig, store session.Store, log logger.Logger) *Client {
	return &Client{
		baseURL:          strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:       &http.Client{Timeout: cfg.RequestTimeout()},
		uploadClient:     &http.Client{Timeout: cfg.UploadRequestTimeout()},
		downloadClient:   &http.Client{Timeout: cfg.DownloadRequestTimeout()},
		store:            store,
		logger:           log,
		tracer:           otel.Tracer("scholar-portal/api"),
		unauthorizedOnce: &sync.Once{},
	}
}

// SetUnauthorizedHandler registers the callback invoked when any request
// comes back 401. The callback runs at most once until ResetUnauthorized
// re-arms it, so a burst of concurrent 401s triggers a single logout.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// ResetUnauthorized re-arms the one-shot 401 handler. Called after a
// successful login so a later session expiry triggers the handler again.
func (c *Client) ResetUnauthorized() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorizedOnce = &sync.Once{}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// PostForm sends application/x-www-form-urlencoded data. The login endpoint
// expects this shape rather than JSON.
func (c *Client) PostForm(ctx context.Context, path string, form map[string]string, out interface{}) error {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	body := strings.NewReader(values.Encode())

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.execute(req, c.httpClient, path, out)
}

// UploadFile sends a multipart form with a single file part plus any extra
// string fields, using the longer upload timeout.
func (c *Client) UploadFile(ctx context.Context, path, fieldName, fileName string, file io.Reader, extra map[string]string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return errors.NewTransportError(fmt.Errorf("failed to build multipart body: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.NewTransportError(fmt.Errorf("failed to read upload payload: %w", err))
	}
	for k, v := range extra {
		if err := writer.WriteField(k, v); err != nil {
			return errors.NewTransportError(fmt.Errorf("failed to write form field %s: %w", k, err))
		}
	}
	if err := writer.Close(); err != nil {
		return errors.NewTransportError(fmt.Errorf("failed to finalize multipart body: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.execute(req, c.uploadClient, path, out)
}

// Download fetches a binary payload, returning the raw bytes and the
// Content-Type reported by the server.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}

	start := time.Now()
	endpoint := normalizeEndpoint(path)

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		metrics.APIRequestErrors.WithLabelValues(endpoint, http.MethodGet).Inc()
		return nil, "", errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	c.record(endpoint, http.MethodGet, resp.StatusCode, start)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}
	if resp.StatusCode >= 400 {
		return nil, "", c.errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.NewTransportError(fmt.Errorf("failed to read download body: %w", err))
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.NewTransportError(fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.execute(req, c.httpClient, path, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if sess, err := c.store.Current(); err == nil && sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}
	return req, nil
}

func (c *Client) execute(req *http.Request, client *http.Client, path string, out interface{}) error {
	endpoint := normalizeEndpoint(path)

	ctx, span := c.tracer.Start(req.Context(), fmt.Sprintf("api.%s %s", strings.ToLower(req.Method), endpoint),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.route", endpoint),
		))
	defer span.End()
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.APIRequestErrors.WithLabelValues(endpoint, req.Method).Inc()
		c.logger.Error("request failed before a response arrived", map[string]interface{}{
			"method":   req.Method,
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return errors.NewTransportError(err)
	}
	defer resp.Body.Close()

	c.record(endpoint, req.Method, resp.StatusCode, start)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}
	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.NewTransportError(fmt.Errorf("failed to decode response body: %w", err))
		}
	}
	return nil
}

func (c *Client) record(endpoint, method string, status int, start time.Time) {
	metrics.APIRequestsTotal.WithLabelValues(endpoint, method, fmt.Sprintf("%d", status)).Inc()
	metrics.APIRequestDuration.WithLabelValues(endpoint, method).Observe(time.Since(start).Seconds())
}

// handleUnauthorized clears the stored session and fires the registered
// logout hook. The sync.Once guarantees a single invocation even when
// several parallel requests fail with 401 at the same moment.
func (c *Client) handleUnauthorized() {
	c.mu.Lock()
	once := c.unauthorizedOnce
	fn := c.onUnauthorized
	c.mu.Unlock()

	once.Do(func() {
		metrics.SessionsInvalidated.Inc()
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("failed to clear session after 401", map[string]interface{}{
				"error": err.Error(),
			})
		}
		c.logger.Info("session invalidated by the server", nil)
		if fn != nil {
			fn()
		}
	})
}

// errorDetail matches the error shape the backend emits. The detail field
// is usually a string but validation failures can carry structured data.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	message := ""
	var payload errorDetail
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			message = s
		} else {
			message = string(payload.Detail)
		}
	}
	return errors.FromStatus(resp.StatusCode, message)
}

// normalizeEndpoint collapses numeric path segments so metric labels stay
// bounded no matter how many entity IDs show up in requests.
func normalizeEndpoint(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg != "" && isNumeric(seg) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
