package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AppConfig aggregates every settings section an application built on the
// record layer needs.
type AppConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Record   RecordSettings   `mapstructure:"record"`
}

// LoadAppConfig reads and validates an application configuration from a YAML
// file. An empty path yields a configuration built purely from defaults.
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "recordkit.db")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("record.dao_postfix", DefaultDaoPostfix)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Record.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
