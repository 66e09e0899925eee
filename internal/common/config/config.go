// internal/common/config/config.go
package config

import (
	"fmt"
	"path/filepath"
)

// Config is the main suite configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	TMS       TMSConfig       `mapstructure:"tms"`
	Data      DataConfig      `mapstructure:"data"`
	Business  BusinessConfig  `mapstructure:"business"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Scenarios ScenariosConfig `mapstructure:"scenarios"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// TMSConfig describes the transportation management system under test.
type TMSConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	EDIEndpoint    string `mapstructure:"edi_endpoint"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// DataConfig locates the registry, document templates and fixtures on disk.
type DataConfig struct {
	Root         string `mapstructure:"root"`
	RegistryPath string `mapstructure:"registry_path"`
	DocumentsDir string `mapstructure:"documents_dir"`
	FixturesDir  string `mapstructure:"fixtures_dir"`
	CounterPath  string `mapstructure:"counter_path"`
}

// RegistryFile returns the registry path resolved against the data root.
func (d DataConfig) RegistryFile() string {
	return filepath.Join(d.Root, d.RegistryPath)
}

// DocumentsRoot returns the documents directory resolved against the data root.
func (d DataConfig) DocumentsRoot() string {
	return filepath.Join(d.Root, d.DocumentsDir)
}

// FixturesRoot returns the fixtures directory resolved against the data root.
func (d DataConfig) FixturesRoot() string {
	return filepath.Join(d.Root, d.FixturesDir)
}

// CounterFile returns the sequence counter path resolved against the data root.
func (d DataConfig) CounterFile() string {
	return filepath.Join(d.Root, d.CounterPath)
}

// BusinessConfig holds values dictated by the business domain rather than the
// test environment.
type BusinessConfig struct {
	Timezone  string `mapstructure:"timezone"`
	BOLPrefix string `mapstructure:"bol_prefix"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// ScenarioConfig holds the core settings applicable to every scenario.
type ScenarioConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

type ScenariosConfig map[string]ScenarioConfig

// Get returns the settings for a named scenario, enabled by default when the
// scenario has no explicit section.
func (s ScenariosConfig) Get(name string) ScenarioConfig {
	if cfg, ok := s[name]; ok {
		return cfg
	}
	return ScenarioConfig{Enabled: true, Timeout: 10000}
}

func validateConfig(cfg *Config) error {
	if cfg.TMS.BaseURL == "" {
		return fmt.Errorf("tms.base_url is required")
	}
	if cfg.Data.RegistryPath == "" {
		return fmt.Errorf("data.registry_path is required")
	}
	if cfg.Business.Timezone == "" {
		return fmt.Errorf("business.timezone is required")
	}
	return nil
}
