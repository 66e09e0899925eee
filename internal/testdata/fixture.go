// internal/testdata/fixture.go
package testdata

import (
	"fmt"
	"os"
	"strings"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/metrics"
)

// TestScriptIDColumn is the fixture column matched against test case
// identifiers.
const TestScriptIDColumn = "Test Script ID"

// GetFixtureRow returns the row whose Test Script ID column equals testCaseID.
// The fixture is re-read and re-parsed on every call.
//
// Fields may be quoted to contain the delimiter. Quoting is tracked as a
// per-character toggle, not per-field: an unescaped quote inside a field
// produces undefined results. This matches how the suite's fixtures have
// always been authored and is a documented limitation.
func GetFixtureRow(path, testCaseID string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.FixtureLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		metrics.FixtureLookups.WithLabelValues("empty").Inc()
		return nil, errors.NewFixtureEmptyError(path)
	}

	header := splitFixtureLine(lines[0])
	idCol := -1
	for i, col := range header {
		if col == TestScriptIDColumn {
			idCol = i
			break
		}
	}
	if idCol < 0 {
		metrics.FixtureLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fixture %s: missing %q column", path, TestScriptIDColumn)
	}

	if len(lines) == 1 {
		metrics.FixtureLookups.WithLabelValues("empty").Inc()
		return nil, errors.NewFixtureEmptyError(path)
	}

	for _, line := range lines[1:] {
		fields := splitFixtureLine(line)
		if idCol >= len(fields) || fields[idCol] != testCaseID {
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		metrics.FixtureLookups.WithLabelValues("hit").Inc()
		return row, nil
	}

	metrics.FixtureLookups.WithLabelValues("miss").Inc()
	return nil, errors.NewRowNotFoundError(path, testCaseID)
}

// splitLines breaks the fixture into lines, tolerating CRLF endings and
// skipping blank lines.
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitFixtureLine splits one delimited line, toggling quote state per
// character. Quote characters themselves are not included in field values.
func splitFixtureLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
