package source

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the loader's tunable state, read from the app config file.
type Config struct {
	SpreadsheetID   string        `mapstructure:"spreadsheet_id"`
	Worksheet       string        `mapstructure:"worksheet"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	SamplePath      string        `mapstructure:"sample_path"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	DBPath          string        `mapstructure:"db_path"`
}

// LoadConfig reads a config file into Config, applying defaults for the
// fields the file omits.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("db_path", "extras-atlas.db")
	v.SetDefault("sample_path", "data/sample.csv")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse source config: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig is the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		CacheTTL:   5 * time.Minute,
		DBPath:     "extras-atlas.db",
		SamplePath: "data/sample.csv",
	}
}
