package tenderresponse

import "tms-edi-suite/internal/models"

// Input carries a carrier's answer to a load tender.
type Input struct {
	BOLNumber   string `json:"bolNumber"`
	CarrierID   string `json:"carrierId"`
	CarrierName string `json:"carrierName,omitempty"`
	Accept      bool   `json:"accept"`
	// DeclineReason is only meaningful when Accept is false.
	DeclineReason string `json:"declineReason,omitempty"`
}

// Output returns the rendered 990, the reservation action code it carries and
// the responding carrier.
type Output struct {
	Payload     string         `json:"payload"`
	DocumentKey string         `json:"documentKey"`
	ActionCode  string         `json:"actionCode"` // "A" accepted, "D" declined
	Carrier     models.Carrier `json:"carrier"`
}
