package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
	"github.com/savasana/yoga-web/internal/app/observability/metrics"
	"github.com/savasana/yoga-web/internal/pkg/config"
)

// TokenSource yields the bearer token of the active session, or "" when
// nobody is logged in. *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// ResourceError is a non-2xx response from the yoga-studio backend. It
// errors.Is-matches the sentinel taxonomy in models by status class.
type ResourceError struct {
	Status  int
	Message string
}

func (e *ResourceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}

func (e *ResourceError) Is(target error) bool {
	switch target {
	case models.ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case models.ErrForbidden:
		return e.Status == http.StatusForbidden
	case models.ErrNotFound:
		return e.Status == http.StatusNotFound
	case models.ErrValidation:
		return e.Status == http.StatusBadRequest
	case models.ErrServerFault:
		return e.Status >= 500
	}
	return false
}

// restClient is the shared transport for every resource client. One fresh
// round trip per call; no caching, no retry.
type restClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

func newRESTClient(cfg config.UpstreamConfig, tokens TokenSource, logger *zap.Logger) *restClient {
	return &restClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do performs one exchange with the backend. body and out may be nil. Every
// request carries a correlation id; the bearer token is attached whenever a
// session is active.
func (c *restClient) do(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.NewString()
	l := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("requestID", requestID),
	)

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(ctx, method, path, 0, time.Since(start))
		l.Warn("Upstream request failed", zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", models.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(ctx, method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resourceErr := &ResourceError{Status: resp.StatusCode}
		var msg models.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			resourceErr.Message = msg.Message
		}
		l.Warn("Upstream rejected request", zap.Int("status", resp.StatusCode))
		return resourceErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}

	l.Debug("Upstream request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
