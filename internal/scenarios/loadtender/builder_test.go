package loadtender

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

// ==========================
// Test Helper Functions
// ==========================

const tenderTemplate = "ST*204*0001~\n" +
	"B2**{CarrierId}**{BOLNumber}**CC~\n" +
	"L11*{LoadID}*SI~\n" +
	"N7*{trailerNumber}*{containerCode}~\n" +
	"G62*64*{Tomorrow}*1*{Time}~\n" +
	"G62*AP*{PickInHours}{PickOutHours}{DropInHours}{DropOutHours}~\n" +
	"SE*6*0001~\n"

var fixedInstant = time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC) // 09:30 EST

func createTestBuilder(t *testing.T) *Builder {
	t.Helper()

	docsRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docsRoot, "edi204"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docsRoot, "edi204", "raw.edi"), []byte(tenderTemplate), 0o644))

	reg := &registry.DocumentRegistry{
		Version: "1.0.0",
		Documents: []registry.Document{
			{Key: "edi204RawData", Path: "edi204/raw.edi", Format: "x12", TokenStyle: "brace"},
		},
	}

	log := logger.NewTestLogger(t)
	resolver := testdata.NewResolver(reg, docsRoot, log)

	engine, err := templating.NewEngine("America/New_York", log)
	require.NoError(t, err)
	engine = engine.WithClock(func() time.Time { return fixedInstant })

	return NewBuilder(DefaultConfig(), resolver, engine, log)
}

func createInput() *Input {
	return &Input{
		BOLNumber:      "EDI20260115001",
		LoadID:         "L-4821",
		ContainerCode:  "CONT881",
		TrailerNumber:  "553211",
		CarrierID:      "SWFT",
		CarrierName:    "Swift Logistics",
		PickInHour:     8,
		PickOutHour:    10,
		DropInHour:     14,
		DropOutHour:    16,
		PickupTomorrow: true,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestBuilder_Execute_Success(t *testing.T) {
	builder := createTestBuilder(t)

	output, err := builder.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, "edi204RawData", output.DocumentKey)
	assert.Equal(t, "EDI20260115001", output.Load.BOLNumber)
	assert.Equal(t, "L-4821", output.Load.LoadID)
	assert.Contains(t, output.Payload, "B2**SWFT**EDI20260115001**CC~")
	assert.Contains(t, output.Payload, "L11*L-4821*SI~")
	assert.Contains(t, output.Payload, "N7*553211*CONT881~")
	assert.Contains(t, output.Payload, "G62*64*01/16/2026*1*0930~")
	assert.Contains(t, output.Payload, "G62*AP*08101416~")
	assert.NotContains(t, output.Payload, "{")
}

func TestBuilder_Execute_GeneratesIdentifiers(t *testing.T) {
	builder := createTestBuilder(t)

	input := createInput()
	input.BOLNumber = ""
	input.TrailerNumber = ""

	output, err := builder.Execute(context.Background(), input)
	require.NoError(t, err)

	// Generated from the pinned clock: prefix + YYYYMMDDHHMM in EST.
	assert.Equal(t, "EDI202601150930", output.Load.BOLNumber)
	assert.Len(t, output.Load.TrailerNumber, 6)
	assert.Contains(t, output.Payload, output.Load.BOLNumber)
	assert.Contains(t, output.Payload, output.Load.TrailerNumber)
}

func TestBuilder_Execute_NextDayHoursRollOver(t *testing.T) {
	builder := createTestBuilder(t)

	input := createInput()
	input.PickInHour = 26
	input.PickOutHour = 28
	input.DropInHour = 30
	input.DropOutHour = 32

	output, err := builder.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Contains(t, output.Payload, "G62*AP*02040608~")
}

// ==========================
// Validation Tests
// ==========================

func TestBuilder_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{name: "missing load id", mutate: func(i *Input) { i.LoadID = "" }},
		{name: "lowercase carrier id", mutate: func(i *Input) { i.CarrierID = "swft" }},
		{name: "hour past two-day range", mutate: func(i *Input) { i.PickInHour = 48 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := createTestBuilder(t)
			input := createInput()
			tt.mutate(input)

			_, err := builder.Execute(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeInputValidationFailed))
		})
	}
}

func TestBuilder_Execute_UnknownDocumentKey(t *testing.T) {
	builder := createTestBuilder(t)
	builder.config.DocumentKey = "edi204DoesNotExist"

	_, err := builder.Execute(context.Background(), createInput())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownDocumentKey))
}
