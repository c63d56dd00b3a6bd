package weather

import (
	"strings"
	"time"
)

// DateLayout is the textual date form accepted from callers (dd.MM.yyyy).
const DateLayout = "02.01.2006"

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	LocalTime   string  `json:"local_time"`
}

type ForecastRange struct {
	MinTemperature float64 `json:"min_temperature"`
	MaxTemperature float64 `json:"max_temperature"`
}

// NormalizeCity turns a free-text city name into the canonical lookup key:
// trimmed, inner whitespace collapsed, lower-cased.
func NormalizeCity(city string) (string, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(city), " "))
	if normalized == "" {
		return "", NewInvalidInput("city cannot be empty")
	}
	return normalized, nil
}

// ParseDate parses a dd.MM.yyyy date and normalizes it to a UTC calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, NewInvalidInput("date must be in dd.MM.yyyy format")
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}
