package invoice

import "tms-edi-suite/internal/common/validation"

func GetInputSchema() validation.InputSchema {
	return validation.InputSchema{
		Required: []string{"bolNumber", "loadId", "carrierId", "lineHaul"},
		Fields: map[string]validation.Field{
			"bolNumber": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(30),
			},
			"loadId": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(20),
			},
			"carrierId": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[A-Z]{2,4}$`),
			},
			"carrierName": {
				Type:      "string",
				MaxLength: validation.IntPtr(60),
			},
			"invoiceNumber": {
				Type:      "string",
				MaxLength: validation.IntPtr(22),
			},
			"lineHaul": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[0-9]+(\.[0-9]{1,2})?$`),
			},
			"fuelSurcharge": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[0-9]+(\.[0-9]{1,2})?$`),
			},
			"accessorial": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[0-9]+(\.[0-9]{1,2})?$`),
			},
		},
	}
}
