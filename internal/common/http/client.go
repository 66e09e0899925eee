// internal/common/http/client.go
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/common/metrics"
)

const maxResponseSnippet = 512

// Client submits rendered documents to the system under test. It never
// retries: retry policy belongs to the calling scenario, not the transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log.With(map[string]interface{}{"component": "transport"}),
	}
}

// SubmitResult reports a successful submission.
type SubmitResult struct {
	StatusCode    int
	CorrelationID string
	Body          string
}

// SubmitDocument posts a rendered payload to endpoint and expects a 2xx
// response. Each submission carries a fresh correlation id so a rejected
// document can be found in the target system's logs.
func (c *Client) SubmitDocument(ctx context.Context, endpoint, contentType, payload string) (*SubmitResult, error) {
	url := c.baseURL + endpoint
	correlationID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(payload))
	if err != nil {
		return nil, errors.NewSubmissionFailedError(endpoint, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Correlation-Id", correlationID)

	c.logger.Debug("submitting document", map[string]interface{}{
		"endpoint":      endpoint,
		"correlationId": correlationID,
		"bytes":         len(payload),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.Submissions.WithLabelValues(endpoint, "failed").Inc()
		return nil, errors.NewSubmissionFailedError(endpoint, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSnippet))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.Submissions.WithLabelValues(endpoint, "rejected").Inc()
		return nil, errors.NewSubmissionRejectedError(endpoint, resp.StatusCode, string(body))
	}
	metrics.Submissions.WithLabelValues(endpoint, "accepted").Inc()

	c.logger.Info("document accepted", map[string]interface{}{
		"endpoint":      endpoint,
		"status":        resp.StatusCode,
		"correlationId": correlationID,
	})

	return &SubmitResult{
		StatusCode:    resp.StatusCode,
		CorrelationID: correlationID,
		Body:          string(body),
	}, nil
}
