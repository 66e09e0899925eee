package shipmentstatus

import "tms-edi-suite/internal/common/validation"

func GetInputSchema() validation.InputSchema {
	return validation.InputSchema{
		Required: []string{"bolNumber", "statusCode", "city", "state"},
		Fields: map[string]validation.Field{
			"bolNumber": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(30),
			},
			"loadId": {
				Type:      "string",
				MaxLength: validation.IntPtr(20),
			},
			"statusCode": {
				Type: "string",
				Enum: []string{"X3", "AF", "X1", "D1", "X6", "SD"},
			},
			"city": {
				Type:      "string",
				MinLength: validation.IntPtr(2),
				MaxLength: validation.IntPtr(30),
			},
			"state": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[A-Z]{2}$`),
			},
			"eventHours": {
				Type:    "string",
				Pattern: validation.StrPtr(`^([01][0-9]|2[0-3])$`),
			},
			"eventMinutes": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[0-5][0-9]$`),
			},
		},
	}
}
