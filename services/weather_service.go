package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PackPilot/packpilot-backend/config"
	"github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/types"
)

// WeatherService fetches trip-range forecasts from Open-Meteo and condenses
// them into a WeatherSummary. Results are cached per location and date range.
type WeatherService struct {
	forecastURL  string
	geocodingURL string
	client       *http.Client
	cache        *weatherCache
}

// windTagThreshold is the km/h daily maximum past which the summary gets a
// "Wind" condition tag.
const windTagThreshold = 30.0

func NewWeatherService(cfg config.WeatherConfig) *WeatherService {
	return &WeatherService{
		forecastURL:  cfg.ForecastURL,
		geocodingURL: cfg.GeocodingURL,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		cache: newWeatherCache(
			time.Duration(cfg.CacheTTLMin)*time.Minute,
			cfg.CacheCapacity,
		),
	}
}

// GetWeatherSummary resolves the location to coordinates and aggregates the
// daily forecast over [start, end]. Any upstream failure comes back as a
// weather-unavailable error; callers degrade rather than abort.
func (s *WeatherService) GetWeatherSummary(ctx context.Context, location string, start, end time.Time) (*types.WeatherSummary, error) {
	log := logger.GetLogger()

	cacheKey := fmt.Sprintf("%s_%s_%s", location, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if cached, ok := s.cache.get(cacheKey); ok {
		log.Debugw("Returning cached weather summary", "location", location)
		return cached, nil
	}

	lat, lon, err := s.getCoordinates(ctx, location)
	if err != nil {
		return nil, errors.WeatherUnavailable(err, fmt.Sprintf("could not geolocate %q", location))
	}
	log.Infow("Resolved destination coordinates", "location", location, "lat", lat, "lon", lon)

	forecasts, err := s.fetchForecast(ctx, lat, lon, start, end)
	if err != nil {
		return nil, errors.WeatherUnavailable(err, fmt.Sprintf("could not fetch forecast for %q", location))
	}

	summary := buildSummary(location, start, end, forecasts)
	s.cache.put(cacheKey, summary)
	return summary, nil
}

// getCoordinates resolves a place name to latitude and longitude through the
// keyless Open-Meteo geocoding endpoint.
func (s *WeatherService) getCoordinates(ctx context.Context, location string) (float64, float64, error) {
	params := url.Values{}
	params.Add("name", location)
	params.Add("count", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", s.geocodingURL, params.Encode()), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding API error: %s", resp.Status)
	}

	var geoResp struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return 0, 0, err
	}
	if len(geoResp.Results) == 0 {
		return 0, 0, fmt.Errorf("no location found for: %s", location)
	}
	return geoResp.Results[0].Latitude, geoResp.Results[0].Longitude, nil
}

// fetchForecast pulls the daily forecast for the trip's date range. Days
// outside the provider's forecast horizon are simply absent from the
// response and yield an empty slice, not an error.
func (s *WeatherService) fetchForecast(ctx context.Context, lat, lon float64, start, end time.Time) ([]types.WeatherData, error) {
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%f", lat))
	params.Add("longitude", fmt.Sprintf("%f", lon))
	params.Add("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code,wind_speed_10m_max")
	params.Add("timezone", "auto")
	params.Add("start_date", start.Format("2006-01-02"))
	params.Add("end_date", end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", s.forecastURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error: %s", resp.Status)
	}

	var forecast struct {
		Daily struct {
			Time                        []string  `json:"time"`
			Temperature2mMax            []float64 `json:"temperature_2m_max"`
			Temperature2mMin            []float64 `json:"temperature_2m_min"`
			PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
			WeatherCode                 []int     `json:"weather_code"`
			WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, err
	}

	days := make([]types.WeatherData, 0, len(forecast.Daily.Time))
	for i, day := range forecast.Daily.Time {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("failed to parse forecast date: %w", err)
		}

		tempMin := forecast.Daily.Temperature2mMin[i]
		tempMax := forecast.Daily.Temperature2mMax[i]

		days = append(days, types.WeatherData{
			Date:            date,
			Temperature:     (tempMin + tempMax) / 2,
			TempMin:         tempMin,
			TempMax:         tempMax,
			RainProbability: forecast.Daily.PrecipitationProbabilityMax[i],
			Condition:       conditionFromCode(forecast.Daily.WeatherCode[i]),
			WindSpeed:       forecast.Daily.WindSpeed10mMax[i],
		})
	}
	return days, nil
}

// conditionFromCode maps a WMO weather code to a coarse condition tag.
func conditionFromCode(code int) string {
	switch {
	case code == 0 || code == 1:
		return "Clear"
	case code == 2 || code == 3 || code == 45 || code == 48:
		return "Clouds"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82) || code >= 95:
		return "Rain"
	default:
		return "Clouds"
	}
}

// buildSummary aggregates daily forecasts over the trip range. With no rows
// covering the range (trip beyond the forecast horizon), it falls back to a
// mild default so downstream adjustment stays a no-op.
func buildSummary(location string, start, end time.Time, forecasts []types.WeatherData) *types.WeatherSummary {
	if len(forecasts) == 0 {
		return &types.WeatherSummary{
			Location:       location,
			StartDate:      start,
			EndDate:        end,
			DailyForecasts: []types.WeatherData{},
			MinTemperature: 20.0,
			MaxTemperature: 25.0,
			AvgTemperature: 22.5,
			Conditions:     []string{"Clear"},
		}
	}

	summary := &types.WeatherSummary{
		Location:       location,
		StartDate:      start,
		EndDate:        end,
		DailyForecasts: forecasts,
		MinTemperature: forecasts[0].TempMin,
		MaxTemperature: forecasts[0].TempMax,
	}

	var tempSum float64
	windy := false
	seen := map[string]bool{}
	for _, day := range forecasts {
		tempSum += day.Temperature
		if day.TempMin < summary.MinTemperature {
			summary.MinTemperature = day.TempMin
		}
		if day.TempMax > summary.MaxTemperature {
			summary.MaxTemperature = day.TempMax
		}
		if day.RainProbability > summary.MaxRainProbability {
			summary.MaxRainProbability = day.RainProbability
		}
		if day.WindSpeed >= windTagThreshold {
			windy = true
		}
		if !seen[day.Condition] {
			seen[day.Condition] = true
			summary.Conditions = append(summary.Conditions, day.Condition)
		}
	}
	if windy && !seen["Wind"] {
		summary.Conditions = append(summary.Conditions, "Wind")
	}
	summary.AvgTemperature = tempSum / float64(len(forecasts))
	summary.HasRain = summary.MaxRainProbability > 30

	return summary
}

// weatherCache is a TTL plus capacity bounded cache. When full, the oldest
// entry is evicted.
type weatherCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	ttl      time.Duration
	capacity int
}

type cacheEntry struct {
	summary  *types.WeatherSummary
	cachedAt time.Time
}

func newWeatherCache(ttl time.Duration, capacity int) *weatherCache {
	return &weatherCache{
		entries:  make(map[string]cacheEntry),
		ttl:      ttl,
		capacity: capacity,
	}
}

func (c *weatherCache) get(key string) (*types.WeatherSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.cachedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.summary, true
}

func (c *weatherCache) put(key string, summary *types.WeatherSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{summary: summary, cachedAt: time.Now()}

	if len(c.entries) > c.capacity {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.cachedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.cachedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}
