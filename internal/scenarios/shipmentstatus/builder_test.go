package shipmentstatus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
	"tms-edi-suite/internal/templating"
	"tms-edi-suite/internal/testdata"
	"tms-edi-suite/pkg/registry"
)

const statusTemplate = "ST*214*0001~\n" +
	"B10*{BOLNumber}*{LoadID}*SCAC~\n" +
	"AT7*{StatusCode}*NS***{Today}*{Time}~\n" +
	"MS1*{City}*{State}~\n" +
	"SE*5*0001~\n"

func createTestBuilder(t *testing.T) *Builder {
	t.Helper()

	docsRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docsRoot, "edi214"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docsRoot, "edi214", "status.edi"), []byte(statusTemplate), 0o644))

	reg := &registry.DocumentRegistry{
		Version: "1.0.0",
		Documents: []registry.Document{
			{Key: "inboundEdi214Status", Path: "edi214/status.edi", Format: "x12", TokenStyle: "brace"},
		},
	}

	log := logger.NewTestLogger(t)
	resolver := testdata.NewResolver(reg, docsRoot, log)

	engine, err := templating.NewEngine("America/New_York", log)
	require.NoError(t, err)
	engine = engine.WithClock(func() time.Time {
		return time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC) // 09:30 EST
	})

	return NewBuilder(DefaultConfig(), resolver, engine, log)
}

func TestBuilder_Execute_ExplicitEventTime(t *testing.T) {
	builder := createTestBuilder(t)

	output, err := builder.Execute(context.Background(), &Input{
		BOLNumber:    "EDI20260115001",
		LoadID:       "L-4821",
		StatusCode:   "X3",
		City:         "Chicago",
		State:        "IL",
		EventHours:   "11",
		EventMinutes: "45",
	})
	require.NoError(t, err)

	assert.Equal(t, "X3", output.StatusCode)
	assert.Contains(t, output.Payload, "B10*EDI20260115001*L-4821*SCAC~")
	assert.Contains(t, output.Payload, "AT7*X3*NS***20260115*1145~")
	assert.Contains(t, output.Payload, "MS1*Chicago*IL~")
}

func TestBuilder_Execute_DefaultsToCurrentTime(t *testing.T) {
	builder := createTestBuilder(t)

	output, err := builder.Execute(context.Background(), &Input{
		BOLNumber:  "EDI20260115001",
		StatusCode: "D1",
		City:       "Dallas",
		State:      "TX",
	})
	require.NoError(t, err)

	// Pinned clock is 09:30 in the business timezone.
	assert.Contains(t, output.Payload, "*0930~")
	// loadId was not supplied: its token must survive untouched.
	assert.Contains(t, output.Payload, "{LoadID}")
}

func TestBuilder_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input *Input
	}{
		{
			name:  "unknown status code",
			input: &Input{BOLNumber: "B1", StatusCode: "ZZ", City: "Chicago", State: "IL"},
		},
		{
			name:  "lowercase state",
			input: &Input{BOLNumber: "B1", StatusCode: "X3", City: "Chicago", State: "il"},
		},
		{
			name:  "bad event hours",
			input: &Input{BOLNumber: "B1", StatusCode: "X3", City: "Chicago", State: "IL", EventHours: "25", EventMinutes: "00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := createTestBuilder(t)
			_, err := builder.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInputValidationFailed))
		})
	}
}
