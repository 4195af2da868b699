package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is the name of the JSON config file looked up in the config directory.
const ConfigFileName = "profile_selector.cfg.json"

// SourceConfig describes where mission profiles are loaded from
type SourceConfig struct {
	Type string `json:"type" mapstructure:"type"` // yaml, sqlite or postgres
	Path string `json:"path" mapstructure:"path"` // YAML file or SQLite database
}

// DBConfig holds Postgres connection settings
type DBConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// SelectorConfig holds the initial view settings of the profile list
type SelectorConfig struct {
	HideInvalid bool   `json:"hideInvalid" mapstructure:"hideInvalid"`
	Details     string `json:"details" mapstructure:"details"`
}

// OTelConfig holds OpenTelemetry metric export settings
type OTelConfig struct {
	Enabled        bool          `json:"enabled" mapstructure:"enabled"`
	ServiceName    string        `json:"serviceName" mapstructure:"serviceName"`
	ExportInterval time.Duration `json:"exportInterval" mapstructure:"exportInterval"`
}

// SetDefaults registers default values for every known key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./selectorlogs")

	viper.SetDefault("source.type", "yaml")
	viper.SetDefault("source.path", "./profiles.yaml")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "ksts")

	viper.SetDefault("selector.hideInvalid", true)
	viper.SetDefault("selector.details", "altitude")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "profile-selector")
	viper.SetDefault("otel.exportInterval", "30s")
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetSourceConfig returns the profile source settings.
func GetSourceConfig() SourceConfig {
	return SourceConfig{
		Type: viper.GetString("source.type"),
		Path: viper.GetString("source.path"),
	}
}

// GetDBConfig returns the Postgres connection settings.
func GetDBConfig() DBConfig {
	return DBConfig{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: viper.GetString("db.password"),
		Database: viper.GetString("db.database"),
	}
}

// GetSelectorConfig returns the initial view settings.
func GetSelectorConfig() SelectorConfig {
	return SelectorConfig{
		HideInvalid: viper.GetBool("selector.hideInvalid"),
		Details:     viper.GetString("selector.details"),
	}
}

// GetOTelConfig returns the metric export settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:        viper.GetBool("otel.enabled"),
		ServiceName:    viper.GetString("otel.serviceName"),
		ExportInterval: viper.GetDuration("otel.exportInterval"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
