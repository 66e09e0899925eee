package loadtender

// Config holds the settings for the load tender scenario.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	DocumentKey string `mapstructure:"document_key"`
	Endpoint    string `mapstructure:"endpoint"`
	DateFormat  string `mapstructure:"date_format"`
	BOLPrefix   string `mapstructure:"bol_prefix"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:     true,
		DocumentKey: "edi204RawData",
		Endpoint:    "/api/edi/inbound",
		DateFormat:  "MM/DD/YYYY",
		BOLPrefix:   "EDI",
	}
}
