package tenderresponse

// Config holds the settings for the tender response scenario.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	DocumentKey string `mapstructure:"document_key"`
	Endpoint    string `mapstructure:"endpoint"`
	DateFormat  string `mapstructure:"date_format"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DocumentKey: "inboundEdi990Response",
		Endpoint:    "/api/edi/inbound",
		DateFormat:  "YYYYMMDD",
	}
}
