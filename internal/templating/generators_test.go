// internal/templating/generators_test.go
package templating

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDateTimeStamp(t *testing.T) {
	engine := createTestEngine(t)

	// fixedInstant is 09:30 on 2026-01-15 in New York.
	assert.Equal(t, "202601150930", engine.GenerateDateTimeStamp())
}

func TestGenerateBOLNumber(t *testing.T) {
	engine := createTestEngine(t)

	assert.Equal(t, "EDI202601150930", engine.GenerateBOLNumber(""))
	assert.Equal(t, "TMS202601150930", engine.GenerateBOLNumber("TMS"))
}

func TestGenerateTrailerNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := GenerateTrailerNumber()
		require.Len(t, n, trailerNumberLength)
		for _, r := range n {
			assert.True(t, r >= '0' && r <= '9', "trailer number must be numeric, got %q", n)
		}
		seen[n] = true
	}
	// Random numeric strings should not collapse to a single value.
	assert.Greater(t, len(seen), 1)
}

func TestSequenceCounter(t *testing.T) {
	path := t.TempDir() + "/counter.txt"
	counter := NewSequenceCounter(path)

	first, err := counter.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := counter.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, second)

	third, err := counter.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, third)
}

func TestSequenceCounter_CorruptFile(t *testing.T) {
	path := t.TempDir() + "/counter.txt"
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

	_, err := NewSequenceCounter(path).Next()
	require.Error(t, err)
}
