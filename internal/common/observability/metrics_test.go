package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObservability_RecordAndShutdown(t *testing.T) {
	obs := New("observability-test")

	ctx := context.Background()
	obs.RecordRender(ctx, "edi204RawData", 12*time.Millisecond, "ok")
	obs.RecordSubmission(ctx, "/api/edi/inbound", 40*time.Millisecond, "accepted")

	// Shutdown takes no arguments and bounds its own flush timeout, so a
	// bare deferred call is always safe.
	assert.NotPanics(t, func() { obs.Shutdown() })
}

func TestObservability_ZeroValueIsInert(t *testing.T) {
	var obs Observability

	ctx := context.Background()
	assert.NotPanics(t, func() {
		obs.RecordRender(ctx, "edi204RawData", time.Millisecond, "ok")
		obs.RecordSubmission(ctx, "/api/edi/inbound", time.Millisecond, "failed")
		obs.Shutdown()
	})
}
