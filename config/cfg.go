package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/oqrlabs/revenue-manager/internal/api/http"
	"github.com/oqrlabs/revenue-manager/internal/apisrv/dashboard"
	"github.com/oqrlabs/revenue-manager/internal/cache"
	"github.com/oqrlabs/revenue-manager/internal/store"
	"github.com/oqrlabs/revenue-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Cache     cache.Config     `mapstructure:"cache"`
	Dashboard dashboard.Config `mapstructure:"dashboard"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/revenue-manager")
		viper.AddConfigPath("/etc/revenue-manager")
		// Config file is optional; env vars can carry everything.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Construct the DSN from individual env vars if it is not set directly.
	if config.DB.DSN == "" {
		host := os.Getenv("MYSQL_HOST")
		if host != "" {
			port := os.Getenv("MYSQL_PORT")
			if port == "" {
				port = "3306"
			}
			user := os.Getenv("MYSQL_USER")
			password := os.Getenv("MYSQL_PASSWORD")
			database := os.Getenv("MYSQL_DATABASE")
			if user != "" && password != "" && database != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
					user, password, host, port, database)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars() {
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.requests_per_minute", "HTTP_REQUESTS_PER_MINUTE")

	viper.BindEnv("cache.data_ttl", "CACHE_DATA_TTL")
	viper.BindEnv("cache.options_ttl", "CACHE_OPTIONS_TTL")

	viper.BindEnv("dashboard.platforms", "DASHBOARD_PLATFORMS")
	viper.BindEnv("dashboard.province_limit", "DASHBOARD_PROVINCE_LIMIT")
}
