package config

import (
	"os"
	"strconv"
	"strings"
)

// FeatureFlags holds all feature flags for the application
type FeatureFlags struct {
	EnableWeatherAPI      bool // Controls live weather adjustments during generation
	EnableRecommendations bool // Controls the transport recommendations endpoint
}

// GetFeatureFlags loads feature flags from environment variables
func GetFeatureFlags() FeatureFlags {
	return FeatureFlags{
		EnableWeatherAPI:      getBoolEnv("ENABLE_WEATHER_API", false),
		EnableRecommendations: getBoolEnv("ENABLE_RECOMMENDATIONS", true),
	}
}

// getBoolEnv retrieves a boolean environment variable with a default value
func getBoolEnv(key string, defaultVal bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}

	val = strings.ToLower(val)

	if val == "true" || val == "yes" || val == "1" || val == "on" {
		return true
	}

	if intVal, err := strconv.Atoi(val); err == nil {
		return intVal != 0
	}

	return false
}
