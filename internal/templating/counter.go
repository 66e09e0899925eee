// internal/templating/counter.go
package templating

import (
	"os"
	"strconv"
	"strings"

	"tms-edi-suite/internal/common/errors"
)

// SequenceCounter hands out incrementing integers backed by a shared file.
//
// The read-increment-write cycle is not serialized: two concurrent callers can
// read the same starting value and produce a duplicate. The counter is unique
// within a single serial run only. Callers needing uniqueness under parallel
// execution must use GenerateBOLNumber, which the suite prefers anyway.
type SequenceCounter struct {
	path string
}

func NewSequenceCounter(path string) *SequenceCounter {
	return &SequenceCounter{path: path}
}

// Next reads the current value, writes back value+1, and returns the value
// read. A missing file starts the sequence at 1.
func (c *SequenceCounter) Next() (int, error) {
	current := 1

	data, err := os.ReadFile(c.path)
	switch {
	case err == nil:
		parsed, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
		if parseErr != nil {
			return 0, errors.NewCounterUnavailableError(c.path, parseErr)
		}
		current = parsed
	case os.IsNotExist(err):
		// first use, start at 1
	default:
		return 0, errors.NewCounterUnavailableError(c.path, err)
	}

	next := strconv.Itoa(current + 1)
	if err := os.WriteFile(c.path, []byte(next+"\n"), 0o644); err != nil {
		return 0, errors.NewCounterUnavailableError(c.path, err)
	}
	return current, nil
}
