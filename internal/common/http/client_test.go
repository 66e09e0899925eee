// internal/common/http/client_test.go
package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
)

func TestSubmitDocument_Accepted(t *testing.T) {
	var gotBody string
	var gotCorrelation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotCorrelation = r.Header.Get("X-Correlation-Id")
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, logger.NewTestLogger(t))
	result, err := client.SubmitDocument(context.Background(), "/api/edi/inbound", "text/plain", "ST*204*0001~")
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, result.StatusCode)
	assert.Equal(t, "queued", result.Body)
	assert.Equal(t, "ST*204*0001~", gotBody)
	assert.NotEmpty(t, gotCorrelation)
	assert.Equal(t, gotCorrelation, result.CorrelationID)
}

func TestSubmitDocument_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("segment B2 missing"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, logger.NewTestLogger(t))
	_, err := client.SubmitDocument(context.Background(), "/api/edi/inbound", "text/plain", "bad")
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrCodeSubmissionRejected))
	stdErr := errors.Normalize(err)
	assert.Contains(t, stdErr.Details, "segment B2 missing")
	assert.Equal(t, 422, stdErr.Metadata["status"])
}

func TestSubmitDocument_ConnectionFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond, logger.NewTestLogger(t))
	_, err := client.SubmitDocument(context.Background(), "/api/edi/inbound", "text/plain", "x")
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrCodeSubmissionFailed))
	assert.True(t, errors.Normalize(err).Retryable)
}

func TestSubmitDocument_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, 5*time.Second, logger.NewTestLogger(t))
	_, err := client.SubmitDocument(ctx, "/api/edi/inbound", "text/plain", "x")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSubmissionFailed))
}
