// Package validation checks scenario inputs against lightweight field schemas
// before any template work happens, so a bad test input fails with a field
// name instead of a half-substituted document.
package validation

import (
	"fmt"
	"regexp"
)

// InputSchema describes the accepted fields of one scenario input.
type InputSchema struct {
	Required             []string         `json:"required,omitempty"`
	Fields               map[string]Field `json:"fields"`
	AdditionalProperties bool             `json:"additionalProperties,omitempty"`
}

// Field constrains one scenario input field.
type Field struct {
	Type        string   `json:"type"` // "string", "number", "integer", "boolean"
	Description string   `json:"description,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Pattern     *string  `json:"pattern,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Summary joins the field errors into one diagnosable string.
func (r *Result) Summary() string {
	if r.Valid {
		return ""
	}
	out := ""
	for i, e := range r.Errors {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return out
}

// ValidateInput validates input against schema with per-field errors.
func ValidateInput(input map[string]interface{}, schema InputSchema) *Result {
	errs := []FieldError{}

	for _, required := range schema.Required {
		if _, exists := input[required]; !exists {
			errs = append(errs, FieldError{
				Field:   required,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	for name, value := range input {
		field, exists := schema.Fields[name]
		if !exists {
			if !schema.AdditionalProperties {
				errs = append(errs, FieldError{
					Field:   name,
					Message: "field not allowed in schema",
					Code:    "EXTRA_FIELD",
				})
			}
			continue
		}
		errs = append(errs, validateField(name, value, field)...)
	}

	return &Result{Valid: len(errs) == 0, Errors: errs}
}

func validateField(name string, value interface{}, field Field) []FieldError {
	if err := validateType(value, field.Type); err != nil {
		return []FieldError{{Field: name, Message: err.Error(), Code: "INVALID_TYPE"}}
	}

	errs := []FieldError{}

	if strVal, ok := value.(string); ok {
		if field.MinLength != nil && len(strVal) < *field.MinLength {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("value must be at least %d characters", *field.MinLength),
				Code:    "MIN_LENGTH_VIOLATION",
			})
		}
		if field.MaxLength != nil && len(strVal) > *field.MaxLength {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("value must be at most %d characters", *field.MaxLength),
				Code:    "MAX_LENGTH_VIOLATION",
			})
		}
		if field.Pattern != nil {
			matched, err := regexp.MatchString(*field.Pattern, strVal)
			if err != nil || !matched {
				errs = append(errs, FieldError{
					Field:   name,
					Message: fmt.Sprintf("value must match pattern %s", *field.Pattern),
					Code:    "PATTERN_MISMATCH",
				})
			}
		}
		if len(field.Enum) > 0 && !contains(field.Enum, strVal) {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("value must be one of %v", field.Enum),
				Code:    "INVALID_ENUM_VALUE",
			})
		}
	}

	if numVal, ok := toFloat(value); ok {
		if field.Minimum != nil && numVal < *field.Minimum {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("value must be >= %v", *field.Minimum),
				Code:    "MINIMUM_VIOLATION",
			})
		}
		if field.Maximum != nil && numVal > *field.Maximum {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("value must be <= %v", *field.Maximum),
				Code:    "MAXIMUM_VIOLATION",
			})
		}
	}

	return errs
}

func validateType(value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "number":
		if _, ok := toFloat(value); !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
	case "integer":
		switch value.(type) {
		case int, int32, int64:
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// IntPtr, FloatPtr and StrPtr build schema constraint pointers inline.
func IntPtr(i int) *int { return &i }

func FloatPtr(f float64) *float64 { return &f }

func StrPtr(s string) *string { return &s }
