// internal/templating/dates.go
package templating

import (
	"fmt"
	"time"

	"tms-edi-suite/internal/common/errors"
)

// DateFormat names a supported calendar-date rendering. The set is closed: an
// unrecognized format fails fast rather than falling back to a best effort.
type DateFormat string

const (
	FormatMMDDYYYY      DateFormat = "MM/DD/YYYY"
	FormatISO           DateFormat = "YYYY-MM-DD"
	FormatCompact       DateFormat = "YYYYMMDD"
	FormatMMDDYY        DateFormat = "MM/DD/YY"
	FormatYYYYMMDDSlash DateFormat = "YYYY/MM/DD"
	FormatDDMMYYYY      DateFormat = "DD/MM/YYYY"
)

var dateLayouts = map[DateFormat]string{
	FormatMMDDYYYY:      "01/02/2006",
	FormatISO:           "2006-01-02",
	FormatCompact:       "20060102",
	FormatMMDDYY:        "01/02/06",
	FormatYYYYMMDDSlash: "2006/01/02",
	FormatDDMMYYYY:      "02/01/2006",
}

// FormatDate renders t's calendar date in the given format.
func FormatDate(t time.Time, format DateFormat) (string, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		return "", errors.NewUnsupportedDateFormatError(string(format))
	}
	return t.Format(layout), nil
}

// ParseDate parses a date string previously produced by FormatDate with the
// same format.
func ParseDate(s string, format DateFormat) (time.Time, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		return time.Time{}, errors.NewUnsupportedDateFormatError(string(format))
	}
	return time.Parse(layout, s)
}

// DerivedDate renders the engine clock's date plus offsetDays (0 today,
// 1 tomorrow, 2 day after tomorrow) in the given format. The date is taken in
// the business timezone, not the host timezone.
func (e *Engine) DerivedDate(offsetDays int, format DateFormat) (string, error) {
	return FormatDate(e.now().AddDate(0, 0, offsetDays), format)
}

// CurrentTime returns the business-timezone hour and minute, each zero-padded
// to two digits.
func (e *Engine) CurrentTime() (hours, minutes string) {
	now := e.now()
	return fmt.Sprintf("%02d", now.Hour()), fmt.Sprintf("%02d", now.Minute())
}
