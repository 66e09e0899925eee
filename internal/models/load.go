// internal/models/load.go
package models

// Load is the shipment record a scenario drives through the TMS.
type Load struct {
	BOLNumber     string `json:"bolNumber"`
	LoadID        string `json:"loadId"`
	ContainerCode string `json:"containerCode,omitempty"`
	TrailerNumber string `json:"trailerNumber,omitempty"`
	EquipmentType string `json:"equipmentType,omitempty"` // e.g. "53V" dry van, "R" reefer
	Weight        int    `json:"weight,omitempty"`        // pounds
	Pieces        int    `json:"pieces,omitempty"`
}

// Stop is one pickup or delivery appointment on a load.
type Stop struct {
	Sequence int    `json:"sequence"`
	Type     string `json:"type"` // "pickup" or "delivery"
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip,omitempty"`
	// Appointment window hours in the business timezone. Values past 23
	// express next-day times and are normalized by the template engine.
	InHour  int `json:"inHour"`
	OutHour int `json:"outHour"`
}
