package loadtender

import "tms-edi-suite/internal/models"

// Input carries the business values of one outbound load tender. Blank
// optional fields leave the matching template tokens untouched, except for
// BOLNumber and TrailerNumber which are generated when absent so every tender
// is addressable.
type Input struct {
	BOLNumber     string `json:"bolNumber,omitempty"`
	LoadID        string `json:"loadId"`
	ContainerCode string `json:"containerCode,omitempty"`
	TrailerNumber string `json:"trailerNumber,omitempty"`
	CarrierID     string `json:"carrierId"`
	CarrierName   string `json:"carrierName,omitempty"`

	// Appointment window hours; values past 23 express next-day times.
	PickInHour  int `json:"pickInHour"`
	PickOutHour int `json:"pickOutHour"`
	DropInHour  int `json:"dropInHour"`
	DropOutHour int `json:"dropOutHour"`

	// Tender pickup date: exactly one of these is normally set.
	PickupToday    bool `json:"pickupToday,omitempty"`
	PickupTomorrow bool `json:"pickupTomorrow,omitempty"`
}

// Output returns the rendered tender and the load record it carries, so the
// calling test can assert against the TMS afterwards.
type Output struct {
	Payload     string      `json:"payload"`
	DocumentKey string      `json:"documentKey"`
	Load        models.Load `json:"load"`
}
