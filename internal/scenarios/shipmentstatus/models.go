package shipmentstatus

// Input carries one carrier status update for a load in transit.
type Input struct {
	BOLNumber  string `json:"bolNumber"`
	LoadID     string `json:"loadId,omitempty"`
	StatusCode string `json:"statusCode"` // X3 arrived pickup, AF departed pickup, X1 arrived delivery, D1 delivered
	City       string `json:"city"`
	State      string `json:"state"`
	// EventHours/EventMinutes override the event time; when blank the current
	// business-timezone time is used.
	EventHours   string `json:"eventHours,omitempty"`
	EventMinutes string `json:"eventMinutes,omitempty"`
}

type Output struct {
	Payload     string `json:"payload"`
	DocumentKey string `json:"documentKey"`
	StatusCode  string `json:"statusCode"`
}
