// Package config handles loading and validation of application configuration
// from environment variables and potentially configuration files.
package config

import (
	"fmt"
	"strings"

	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// EngineConfig holds paths to the static configuration the checklist engine
// consumes: the template directory and the transport rule document.
type EngineConfig struct {
	TemplateDir string `mapstructure:"TEMPLATE_DIR" yaml:"template_dir"`
	RulesFile   string `mapstructure:"RULES_FILE" yaml:"rules_file"`
}

// WeatherConfig holds forecast API endpoints and client tuning. The forecast
// provider is keyless; the endpoints are configurable mainly so tests can
// point the client at a local server.
type WeatherConfig struct {
	ForecastURL    string `mapstructure:"FORECAST_URL" yaml:"forecast_url"`
	GeocodingURL   string `mapstructure:"GEOCODING_URL" yaml:"geocoding_url"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
	CacheTTLMin    int    `mapstructure:"CACHE_TTL_MINUTES" yaml:"cache_ttl_minutes"`
	CacheCapacity  int    `mapstructure:"CACHE_CAPACITY" yaml:"cache_capacity"`
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER" yaml:"server"`
	Engine  EngineConfig  `mapstructure:"ENGINE" yaml:"engine"`
	Weather WeatherConfig `mapstructure:"WEATHER" yaml:"weather"`
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("ENGINE.TEMPLATE_DIR", "./templates")
	v.SetDefault("ENGINE.RULES_FILE", "./data/transport_rules.yaml")
	v.SetDefault("WEATHER.FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("WEATHER.GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("WEATHER.TIMEOUT_SECONDS", 10)
	v.SetDefault("WEATHER.CACHE_TTL_MINUTES", 60)
	v.SetDefault("WEATHER.CACHE_CAPACITY", 100)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"ENGINE.TEMPLATE_DIR", "TEMPLATE_DIR"},
		{"ENGINE.RULES_FILE", "RULES_FILE"},
		{"WEATHER.FORECAST_URL", "WEATHER_FORECAST_URL"},
		{"WEATHER.GEOCODING_URL", "WEATHER_GEOCODING_URL"},
		{"WEATHER.TIMEOUT_SECONDS", "WEATHER_TIMEOUT_SECONDS"},
		{"WEATHER.CACHE_TTL_MINUTES", "WEATHER_CACHE_TTL_MINUTES"},
		{"WEATHER.CACHE_CAPACITY", "WEATHER_CACHE_CAPACITY"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"templateDir", cfg.Engine.TemplateDir,
		"rulesFile", cfg.Engine.RulesFile,
	)

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", c.Server.Environment)
	}
	if c.Engine.TemplateDir == "" {
		return fmt.Errorf("template directory must be configured")
	}
	if c.Engine.RulesFile == "" {
		return fmt.Errorf("rules file must be configured")
	}
	if c.Weather.TimeoutSeconds <= 0 {
		return fmt.Errorf("weather timeout must be positive, got %d", c.Weather.TimeoutSeconds)
	}
	return nil
}
