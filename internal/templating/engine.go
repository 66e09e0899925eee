// internal/templating/engine.go
package templating

import (
	"fmt"
	"strings"
	"time"

	"tms-edi-suite/internal/common/errors"
	"tms-edi-suite/internal/common/logger"
)

// Engine substitutes placeholder tokens in template documents. It is purely
// functional per call apart from the clock read; no state is retained between
// invocations.
type Engine struct {
	clock    func() time.Time
	location *time.Location
	logger   logger.Logger
}

// NewEngine builds an Engine anchored to the given business timezone
// (e.g. "America/New_York"). The host clock is not assumed to be in the
// business timezone.
func NewEngine(timezone string, log logger.Logger) (*Engine, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.NewTimezoneUnavailableError(timezone, err)
	}
	return &Engine{
		clock:    time.Now,
		location: loc,
		logger:   log.With(map[string]interface{}{"component": "templating"}),
	}, nil
}

// WithClock pins the engine to a fixed reference instant. A test run that
// derives dates near midnight should pin the clock once so the document built
// at the start of the run agrees with the assertion made at the end.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	clone := *e
	clone.clock = clock
	return &clone
}

// valueRules lists the value-driven business tokens in substitution order.
var valueRules = []struct {
	token string
	get   func(Context) string
}{
	{"BOLNumber", func(c Context) string { return c.BOLNumber }},
	{"LoadID", func(c Context) string { return c.LoadID }},
	{"containerCode", func(c Context) string { return c.ContainerCode }},
	{"trailerNumber", func(c Context) string { return c.TrailerNumber }},
	{"CarrierName", func(c Context) string { return c.CarrierName }},
	{"CarrierId", func(c Context) string { return c.CarrierID }},
	{"InvoiceNumber", func(c Context) string { return c.InvoiceNumber }},
	{"UserName", func(c Context) string { return c.UserName }},
}

// dateRules lists the flag-driven date tokens and their day offsets.
var dateRules = []struct {
	token  string
	flag   func(Context) bool
	offset int
}{
	{"Today", func(c Context) bool { return c.SubstituteToday }, 0},
	{"Tomorrow", func(c Context) bool { return c.SubstituteTomorrow }, 1},
	{"DayAfterTomorrow", func(c Context) bool { return c.SubstituteDayAfterTomorrow }, 2},
}

// hourTokens maps appointment-hour tokens to their Context fields.
var hourTokens = []struct {
	token string
	get   func(Context) *int
}{
	{"PickInHours", func(c Context) *int { return c.PickInHour }},
	{"PickOutHours", func(c Context) *int { return c.PickOutHour }},
	{"DropInHours", func(c Context) *int { return c.DropInHour }},
	{"DropOutHours", func(c Context) *int { return c.DropOutHour }},
}

// Render produces the fully substituted document. Every occurrence of a token
// receives the same value within one pass; tokens without a resolved value are
// left byte-identical to the input.
func (e *Engine) Render(doc string, style TokenStyle, ctx Context) (string, error) {
	replacements, err := e.resolve(ctx)
	if err != nil {
		return "", err
	}
	for k, v := range ctx.Extra {
		replacements[k] = v
	}

	out := doc
	for token, value := range replacements {
		out = strings.ReplaceAll(out, style.Wrap(token), value)
	}

	e.logger.Debug("document rendered", map[string]interface{}{
		"tokensResolved": len(replacements),
		"style":          string(style),
	})
	return out, nil
}

// RenderMap substitutes every entry of values by exact name, bypassing the
// presence and flag rules entirely. This is the mode for open-ended
// composition where the placeholder set is not known in advance.
func (e *Engine) RenderMap(doc string, style TokenStyle, values map[string]string) string {
	out := doc
	for name, value := range values {
		out = strings.ReplaceAll(out, style.Wrap(name), value)
	}
	return out
}

// resolve computes the replacement set for one pass.
func (e *Engine) resolve(ctx Context) (map[string]string, error) {
	replacements := make(map[string]string)

	// Rule 1: value-driven business fields.
	for _, r := range valueRules {
		if v := r.get(ctx); strings.TrimSpace(v) != "" {
			replacements[r.token] = v
		}
	}

	// Rule 2: flag-driven dates.
	for _, r := range dateRules {
		if !r.flag(ctx) {
			continue
		}
		formatted, err := FormatDate(e.now().AddDate(0, 0, r.offset), ctx.DateFormat)
		if err != nil {
			return nil, err
		}
		replacements[r.token] = formatted
	}

	// Rule 3: combined time.
	if strings.TrimSpace(ctx.Hours) != "" && strings.TrimSpace(ctx.Minutes) != "" {
		replacements["Time"] = ctx.Hours + ctx.Minutes
	}

	// Rule 4: appointment hours with lockstep rollover.
	hours, err := normalizeHours(ctx)
	if err != nil {
		return nil, err
	}
	for token, v := range hours {
		replacements[token] = v
	}

	return replacements, nil
}

// normalizeHours applies the rollover rule: when any supplied appointment hour
// is >= 24, all supplied hours are reduced by 24. The adjustment is
// all-or-nothing so a pickup at 26 and a drop at 30 stay on the same next-day
// schedule. Hours render zero-padded to two digits.
func normalizeHours(ctx Context) (map[string]string, error) {
	offset := 0
	for _, h := range hourTokens {
		if v := h.get(ctx); v != nil && *v >= 24 {
			offset = 24
			break
		}
	}

	out := make(map[string]string)
	for _, h := range hourTokens {
		v := h.get(ctx)
		if v == nil {
			continue
		}
		normalized := *v - offset
		if normalized < 0 || normalized > 23 {
			return nil, errors.NewInvalidHourValueError(h.token, *v)
		}
		out[h.token] = fmt.Sprintf("%02d", normalized)
	}
	return out, nil
}

func (e *Engine) now() time.Time {
	return e.clock().In(e.location)
}
