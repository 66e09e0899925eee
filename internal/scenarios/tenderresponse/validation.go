package tenderresponse

import "tms-edi-suite/internal/common/validation"

func GetInputSchema() validation.InputSchema {
	return validation.InputSchema{
		Required: []string{"bolNumber", "carrierId"},
		Fields: map[string]validation.Field{
			"bolNumber": {
				Type:      "string",
				MinLength: validation.IntPtr(1),
				MaxLength: validation.IntPtr(30),
			},
			"carrierId": {
				Type:    "string",
				Pattern: validation.StrPtr(`^[A-Z]{2,4}$`),
			},
			"carrierName": {
				Type:      "string",
				MaxLength: validation.IntPtr(60),
			},
			"accept": {Type: "boolean"},
			"declineReason": {
				Type: "string",
				Enum: []string{"capacity", "equipment", "lane", "rate"},
			},
		},
	}
}
