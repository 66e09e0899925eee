package invoice

// Config holds the settings for the carrier invoice scenario.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	DocumentKey string `mapstructure:"document_key"`
	Endpoint    string `mapstructure:"endpoint"`
	DateFormat  string `mapstructure:"date_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DocumentKey: "inboundEdi210Invoice",
		Endpoint:    "/api/edi/inbound",
		DateFormat:  "YYYY-MM-DD",
	}
}
