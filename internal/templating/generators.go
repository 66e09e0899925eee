// internal/templating/generators.go
package templating

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// DefaultBOLPrefix is the textual prefix carried by generated BOL numbers.
	DefaultBOLPrefix = "EDI"

	trailerNumberLength = 6
)

// GenerateDateTimeStamp returns the engine clock's business-timezone instant
// as a YYYYMMDDHHMM numeric stamp.
func (e *Engine) GenerateDateTimeStamp() string {
	return e.now().Format("200601021504")
}

// GenerateBOLNumber fabricates a BOL number from a textual prefix plus the
// date-time stamp. Uniqueness holds at timestamp granularity only; callers
// generating more than one per minute should append their own discriminator.
func (e *Engine) GenerateBOLNumber(prefix string) string {
	if prefix == "" {
		prefix = DefaultBOLPrefix
	}
	return prefix + e.GenerateDateTimeStamp()
}

// GenerateTrailerNumber fabricates a fixed-length random numeric trailer
// number. Regenerated on every call, never persisted.
func GenerateTrailerNumber() string {
	var b strings.Builder
	for i := 0; i < trailerNumberLength; i++ {
		fmt.Fprintf(&b, "%d", rand.Intn(10))
	}
	return b.String()
}
