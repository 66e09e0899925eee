// internal/templating/context.go

// Package templating renders EDI and JSON template documents by substituting
// named placeholder tokens. One rule-driven engine replaces the per-document
// update functions of older suites: document variants are data, not code.
package templating

// TokenStyle selects the placeholder delimiter convention of a document.
// Both styles coexist across the template corpus with no semantic
// distinction; a document responds only to its own style.
type TokenStyle string

const (
	StyleBrace  TokenStyle = "brace"  // {Name}
	StyleDollar TokenStyle = "dollar" // ${Name}
)

// Wrap renders the token for name in this style.
func (s TokenStyle) Wrap(name string) string {
	if s == StyleDollar {
		return "${" + name + "}"
	}
	return "{" + name + "}"
}

// StyleFor maps a registry tokenStyle value onto a TokenStyle, defaulting to
// brace.
func StyleFor(name string) TokenStyle {
	if name == string(StyleDollar) {
		return StyleDollar
	}
	return StyleBrace
}

// Context is the bag of resolved values available to one substitution pass.
//
// Business fields are value-driven: a blank value (after trimming) leaves the
// corresponding token untouched in the output, so a caller never corrupts a
// document by blanking a field it chose not to override. Date substitution is
// flag-driven: callers opt in per date, independent of which business fields
// were supplied. The asymmetry is deliberate.
type Context struct {
	// Value-driven business fields.
	BOLNumber     string
	LoadID        string
	ContainerCode string
	TrailerNumber string
	CarrierName   string
	CarrierID     string
	InvoiceNumber string
	UserName      string

	// Flag-driven date substitution. DateFormat applies to all three.
	SubstituteToday            bool
	SubstituteTomorrow         bool
	SubstituteDayAfterTomorrow bool
	DateFormat                 DateFormat

	// Combined {Time} token: hours ++ minutes with no separator. Skipped
	// entirely when either part is blank.
	Hours   string
	Minutes string

	// Appointment hours, normalized together: when any supplied value is >= 24
	// all supplied values are reduced by 24 in lockstep. Nil means not
	// supplied.
	PickInHour  *int
	PickOutHour *int
	DropInHour  *int
	DropOutHour *int

	// Extra substitutions applied by exact name after the rules above.
	Extra map[string]string
}

// Hour is a convenience for building appointment-hour pointers in callers and
// tests.
func Hour(h int) *int {
	return &h
}
