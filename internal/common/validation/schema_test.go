package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func carrierSchema() InputSchema {
	return InputSchema{
		Required: []string{"carrierId"},
		Fields: map[string]Field{
			"carrierId": {
				Type:      "string",
				MinLength: IntPtr(2),
				MaxLength: IntPtr(4),
				Pattern:   StrPtr(`^[A-Z]+$`),
			},
			"accept": {
				Type: "boolean",
			},
			"declineReason": {
				Type: "string",
				Enum: []string{"capacity", "equipment", "lane"},
			},
			"rate": {
				Type:    "number",
				Minimum: FloatPtr(0),
				Maximum: FloatPtr(100000),
			},
		},
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]interface{}
		wantValid bool
		wantCode  string
	}{
		{
			name:      "valid input",
			input:     map[string]interface{}{"carrierId": "SWFT", "accept": true, "rate": 1250.50},
			wantValid: true,
		},
		{
			name:      "missing required field",
			input:     map[string]interface{}{"accept": true},
			wantValid: false,
			wantCode:  "REQUIRED_FIELD_MISSING",
		},
		{
			name:      "wrong type",
			input:     map[string]interface{}{"carrierId": 42},
			wantValid: false,
			wantCode:  "INVALID_TYPE",
		},
		{
			name:      "pattern mismatch",
			input:     map[string]interface{}{"carrierId": "sw1"},
			wantValid: false,
			wantCode:  "PATTERN_MISMATCH",
		},
		{
			name:      "too long",
			input:     map[string]interface{}{"carrierId": "SWIFTY"},
			wantValid: false,
			wantCode:  "MAX_LENGTH_VIOLATION",
		},
		{
			name:      "bad enum value",
			input:     map[string]interface{}{"carrierId": "SWFT", "declineReason": "weather"},
			wantValid: false,
			wantCode:  "INVALID_ENUM_VALUE",
		},
		{
			name:      "rate out of range",
			input:     map[string]interface{}{"carrierId": "SWFT", "rate": -5.0},
			wantValid: false,
			wantCode:  "MINIMUM_VIOLATION",
		},
		{
			name:      "unknown field rejected",
			input:     map[string]interface{}{"carrierId": "SWFT", "bogus": "x"},
			wantValid: false,
			wantCode:  "EXTRA_FIELD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateInput(tt.input, carrierSchema())
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				found := false
				for _, e := range result.Errors {
					if e.Code == tt.wantCode {
						found = true
					}
				}
				assert.True(t, found, "expected error code %s in %v", tt.wantCode, result.Errors)
				assert.NotEmpty(t, result.Summary())
			}
		})
	}
}
