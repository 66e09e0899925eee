package loadtender

import "tms-edi-suite/internal/common/validation"

func GetInputSchema() validation.InputSchema {
	return validation.InputSchema{
		Required: []string{"loadId", "carrierId"},
		Fields: map[string]validation.Field{
			"bolNumber": {
				Type:      "string",
				MaxLength: validation.IntPtr(30),
			},
			"loadId": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(20),
			},
			"containerCode": {
				Type:      "string",
				MaxLength: validation.IntPtr(15),
			},
			"trailerNumber": {
				Type:      "string",
				MaxLength: validation.IntPtr(10),
			},
			"carrierId": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[A-Z]{2,4}$`),
			},
			"carrierName": {
				Type:      "string",
				MaxLength: validation.IntPtr(60),
			},
			"pickInHour": {
				Type:    "integer",
				Minimum: validation.FloatPtr(0),
				Maximum: validation.FloatPtr(47),
			},
			"pickOutHour": {
				Type:    "integer",
				Minimum: validation.FloatPtr(0),
				Maximum: validation.FloatPtr(47),
			},
			"dropInHour": {
				Type:    "integer",
				Minimum: validation.FloatPtr(0),
				Maximum: validation.FloatPtr(47),
			},
			"dropOutHour": {
				Type:    "integer",
				Minimum: validation.FloatPtr(0),
				Maximum: validation.FloatPtr(47),
			},
			"pickupToday":    {Type: "boolean"},
			"pickupTomorrow": {Type: "boolean"},
		},
	}
}
