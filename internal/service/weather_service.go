package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/melixz/WeatherAPI/internal/db/forecastoverride"
	"github.com/melixz/WeatherAPI/internal/inmemorycache"
	"github.com/melixz/WeatherAPI/internal/providers"
	"github.com/melixz/WeatherAPI/internal/weather"
)

// WeatherService resolves weather queries against three sources with a strict
// precedence: override > cache > provider. Values are never merged across
// sources and stale cache entries are never served.
type WeatherService interface {
	GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error)
	GetForecast(ctx context.Context, city string, date string) (weather.ForecastRange, error)
	SetOverride(ctx context.Context, city string, date string, forecast weather.ForecastRange) (weather.ForecastRange, error)
}

type weatherService struct {
	provider    providers.OpenWeatherMapService
	cache       inmemorycache.Cache
	overrides   forecastoverride.Repository
	currentTTL  time.Duration
	forecastTTL time.Duration
}

func NewWeatherService(
	provider providers.OpenWeatherMapService,
	cache inmemorycache.Cache,
	overrides forecastoverride.Repository,
	currentTTL time.Duration,
	forecastTTL time.Duration,
) WeatherService {
	return &weatherService{
		provider:    provider,
		cache:       cache,
		overrides:   overrides,
		currentTTL:  currentTTL,
		forecastTTL: forecastTTL,
	}
}

func currentCacheKey(city string) string {
	return fmt.Sprintf("current:%s", city)
}

func forecastCacheKey(city string, date time.Time) string {
	return fmt.Sprintf("forecast:%s:%s", city, date.Format("2006-01-02"))
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error) {
	cityKey, err := weather.NormalizeCity(city)
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	cacheKey := currentCacheKey(cityKey)

	var cached weather.CurrentWeather
	hit, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		return weather.CurrentWeather{}, weather.NewStoreUnavailable("weather cache unavailable", err)
	}
	if hit {
		log.Debug().Str("city", cityKey).Msg("current weather served from cache")
		return cached, nil
	}

	current, err := s.provider.CurrentWeather(ctx, cityKey)
	if err != nil {
		return weather.CurrentWeather{}, err
	}

	if err := s.cache.Set(cacheKey, current, s.currentTTL); err != nil {
		return weather.CurrentWeather{}, weather.NewStoreUnavailable("weather cache unavailable", err)
	}

	return current, nil
}

func (s *weatherService) GetForecast(ctx context.Context, city string, date string) (weather.ForecastRange, error) {
	cityKey, err := weather.NormalizeCity(city)
	if err != nil {
		return weather.ForecastRange{}, err
	}

	dateKey, err := weather.ParseDate(date)
	if err != nil {
		return weather.ForecastRange{}, err
	}

	// Overrides always win and are never expired by cache TTL logic.
	override, err := s.overrides.Find(cityKey, dateKey)
	if err != nil {
		return weather.ForecastRange{}, weather.NewStoreUnavailable("override store unavailable", err)
	}
	if override != nil {
		log.Debug().Str("city", cityKey).Str("date", date).Msg("forecast served from override")
		return weather.ForecastRange{
			MinTemperature: override.MinTemperature,
			MaxTemperature: override.MaxTemperature,
		}, nil
	}

	cacheKey := forecastCacheKey(cityKey, dateKey)

	var cached weather.ForecastRange
	hit, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		return weather.ForecastRange{}, weather.NewStoreUnavailable("weather cache unavailable", err)
	}
	if hit {
		log.Debug().Str("city", cityKey).Str("date", date).Msg("forecast served from cache")
		return cached, nil
	}

	forecast, err := s.provider.Forecast(ctx, cityKey, dateKey)
	if err != nil {
		return weather.ForecastRange{}, err
	}

	if err := s.cache.Set(cacheKey, forecast, s.forecastTTL); err != nil {
		return weather.ForecastRange{}, weather.NewStoreUnavailable("weather cache unavailable", err)
	}

	return forecast, nil
}

// SetOverride stores a user forecast for (city, date), replacing any prior
// override for that key, and drops the matching cache entry so the override
// is visible on the very next read.
func (s *weatherService) SetOverride(ctx context.Context, city string, date string, forecast weather.ForecastRange) (weather.ForecastRange, error) {
	cityKey, err := weather.NormalizeCity(city)
	if err != nil {
		return weather.ForecastRange{}, err
	}

	dateKey, err := weather.ParseDate(date)
	if err != nil {
		return weather.ForecastRange{}, err
	}

	if forecast.MinTemperature > forecast.MaxTemperature {
		return weather.ForecastRange{}, weather.NewInvalidInput("min_temperature cannot exceed max_temperature")
	}

	stored, err := s.overrides.Upsert(cityKey, dateKey, forecast)
	if err != nil {
		return weather.ForecastRange{}, weather.NewStoreUnavailable("override store unavailable", err)
	}

	s.cache.Delete(forecastCacheKey(cityKey, dateKey))

	log.Info().Str("city", cityKey).Str("date", date).Msg("forecast override stored")

	return weather.ForecastRange{
		MinTemperature: stored.MinTemperature,
		MaxTemperature: stored.MaxTemperature,
	}, nil
}
