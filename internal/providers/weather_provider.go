package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/melixz/WeatherAPI/internal/weather"
)

type OpenWeatherMapService interface {
	CurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error)
	Forecast(ctx context.Context, city string, date time.Time) (weather.ForecastRange, error)
	GetHTTPClient() *http.Client
}

type openWeatherMapService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time
}

func NewOpenWeatherMapService(apiKey, baseURL string, timeout time.Duration) OpenWeatherMapService {
	return NewOpenWeatherMapServiceWithClock(apiKey, baseURL, timeout, time.Now)
}

// NewOpenWeatherMapServiceWithClock injects the clock used to compute the
// city-local time of current weather readings.
func NewOpenWeatherMapServiceWithClock(apiKey, baseURL string, timeout time.Duration, now func() time.Time) OpenWeatherMapService {
	return &openWeatherMapService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweathermap",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		now: now,
	}
}

type currentWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Timezone int `json:"timezone"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	} `json:"list"`
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
}

func (s *openWeatherMapService) CurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error) {
	resp, err := s.doRequest(ctx, "weather", city)
	if err != nil {
		return weather.CurrentWeather{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return weather.CurrentWeather{}, err
	}

	var apiResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return weather.CurrentWeather{}, weather.NewUpstreamUnavailable("weather provider returned malformed JSON", err)
	}

	localTime := s.now().UTC().Add(time.Duration(apiResp.Timezone) * time.Second)

	return weather.CurrentWeather{
		Temperature: round1(apiResp.Main.Temp),
		LocalTime:   localTime.Format("15:04"),
	}, nil
}

// Forecast aggregates the provider's multi-point series into a min/max range
// over the sample points falling on the target calendar day in the city's
// local timezone.
func (s *openWeatherMapService) Forecast(ctx context.Context, city string, date time.Time) (weather.ForecastRange, error) {
	resp, err := s.doRequest(ctx, "forecast", city)
	if err != nil {
		return weather.ForecastRange{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return weather.ForecastRange{}, err
	}

	var apiResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return weather.ForecastRange{}, weather.NewUpstreamUnavailable("weather provider returned malformed JSON", err)
	}

	cityZone := time.FixedZone("city", apiResp.City.Timezone)

	var minTemp, maxTemp float64
	found := false

	for _, item := range apiResp.List {
		sampleTime := time.Unix(item.Dt, 0).In(cityZone)
		if sampleTime.Year() != date.Year() || sampleTime.Month() != date.Month() || sampleTime.Day() != date.Day() {
			continue
		}

		if !found {
			minTemp, maxTemp = item.Main.Temp, item.Main.Temp
			found = true
			continue
		}

		minTemp = math.Min(minTemp, item.Main.Temp)
		maxTemp = math.Max(maxTemp, item.Main.Temp)
	}

	if !found {
		return weather.ForecastRange{}, weather.NewUnsupportedDate(
			fmt.Sprintf("no forecast available for %s: provider covers only the next few days", date.Format("2006-01-02")),
		)
	}

	return weather.ForecastRange{
		MinTemperature: round1(minTemp),
		MaxTemperature: round1(maxTemp),
	}, nil
}

// doRequest issues a single upstream call through the circuit breaker. There
// are no retries here; retry policy belongs to callers.
func (s *openWeatherMapService) doRequest(ctx context.Context, endpoint, city string) (*http.Response, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("lang", "en")
	params.Set("appid", s.apiKey)

	requestURL := fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, weather.NewUpstreamUnavailable("failed to build weather provider request", err)
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		resp, doErr := s.client.Do(req)
		if doErr != nil {
			return nil, doErr
		}

		// Server-side failures feed the breaker; client-level statuses pass
		// through for per-endpoint mapping.
		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, fmt.Errorf("weather provider returned status code: %d", resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, weather.NewUpstreamUnavailable("weather provider circuit open", err)
		}
		return nil, weather.NewUpstreamUnavailable("weather provider request failed", err)
	}

	return result.(*http.Response), nil
}

func checkStatus(statusCode int) error {
	switch {
	case statusCode == http.StatusOK:
		return nil
	case statusCode == http.StatusNotFound:
		return weather.NewNotFound("city not found in weather provider")
	default:
		return weather.NewUpstreamUnavailable(fmt.Sprintf("weather provider returned status code: %d", statusCode), nil)
	}
}

func (s *openWeatherMapService) GetHTTPClient() *http.Client {
	return s.client
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
