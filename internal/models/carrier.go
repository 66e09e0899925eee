// internal/models/carrier.go
package models

// Carrier identifies a motor carrier in tender and response documents.
type Carrier struct {
	ID   string `json:"id"` // SCAC-style code
	Name string `json:"name"`
	MC   string `json:"mcNumber,omitempty"`
	DOT  string `json:"dotNumber,omitempty"`
}

// Invoice carries the billing values of an EDI 210.
type Invoice struct {
	Number      string  `json:"number"`
	BOLNumber   string  `json:"bolNumber"`
	LoadID      string  `json:"loadId"`
	LineHaul    float64 `json:"lineHaul"`
	FuelSurch   float64 `json:"fuelSurcharge,omitempty"`
	Accessorial float64 `json:"accessorial,omitempty"`
}

// Total returns the invoice grand total.
func (i Invoice) Total() float64 {
	return i.LineHaul + i.FuelSurch + i.Accessorial
}
