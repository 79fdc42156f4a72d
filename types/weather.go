package types

import "time"

// WeatherData is one day of forecast for a destination.
type WeatherData struct {
	Date            time.Time `json:"date"`
	Temperature     float64   `json:"temperature"`
	FeelsLike       float64   `json:"feelsLike"`
	TempMin         float64   `json:"tempMin"`
	TempMax         float64   `json:"tempMax"`
	Humidity        int       `json:"humidity"`
	RainProbability float64   `json:"rainProbability"`
	Condition       string    `json:"condition"`
	WindSpeed       float64   `json:"windSpeed"`
}

// WeatherSummary aggregates the forecast over a trip's date range. Condition
// tags are coarse labels such as "Rain", "Snow", "Wind", "Clear".
type WeatherSummary struct {
	Location           string        `json:"location"`
	StartDate          time.Time     `json:"startDate"`
	EndDate            time.Time     `json:"endDate"`
	DailyForecasts     []WeatherData `json:"dailyForecasts"`
	HasRain            bool          `json:"hasRain"`
	MinTemperature     float64       `json:"minTemperature"`
	MaxTemperature     float64       `json:"maxTemperature"`
	AvgTemperature     float64       `json:"avgTemperature"`
	MaxRainProbability float64       `json:"maxRainProbability"`
	Conditions         []string      `json:"conditions"`
}

// HasCondition reports whether the given condition tag was observed.
func (s *WeatherSummary) HasCondition(tag string) bool {
	for _, c := range s.Conditions {
		if c == tag {
			return true
		}
	}
	return false
}

// Snapshot converts the summary into the compact form stored on a checklist.
func (s *WeatherSummary) Snapshot() *WeatherSnapshot {
	return &WeatherSnapshot{
		AverageTemperature: s.AvgTemperature,
		MaxTemperature:     s.MaxTemperature,
		MinTemperature:     s.MinTemperature,
		RainProbability:    s.MaxRainProbability,
		Conditions:         s.Conditions,
		ForecastDate:       s.StartDate.Format("2006-01-02"),
	}
}
