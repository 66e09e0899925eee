package invoice

// Input carries one carrier freight invoice against a delivered load.
type Input struct {
	BOLNumber     string `json:"bolNumber"`
	LoadID        string `json:"loadId"`
	CarrierID     string `json:"carrierId"`
	CarrierName   string `json:"carrierName,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"` // generated when blank
	LineHaul      string `json:"lineHaul"`
	FuelSurcharge string `json:"fuelSurcharge,omitempty"`
	Accessorial   string `json:"accessorial,omitempty"`
}

type Output struct {
	Payload       string `json:"payload"`
	DocumentKey   string `json:"documentKey"`
	InvoiceNumber string `json:"invoiceNumber"`
}
