package shipmentstatus

// Config holds the settings for the shipment status scenario.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	DocumentKey string `mapstructure:"document_key"`
	Endpoint    string `mapstructure:"endpoint"`
	DateFormat  string `mapstructure:"date_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DocumentKey: "inboundEdi214Status",
		Endpoint:    "/api/edi/inbound",
		DateFormat:  "YYYYMMDD",
	}
}
