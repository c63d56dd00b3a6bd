package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/melixz/WeatherAPI/internal/service"
	"github.com/melixz/WeatherAPI/internal/weather"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	validate       *validator.Validate
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		validate:       validator.New(),
		timeout:        timeout,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/weather/current":
		h.GetCurrentWeather(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/api/weather/forecast":
		h.GetForecast(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/api/weather/forecast":
		h.CreateOverride(w, r)
	case r.URL.Path == "/api/weather/current" || r.URL.Path == "/api/weather/forecast":
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *WeatherHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'city' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	current, err := h.weatherService.GetCurrentWeather(ctx, city)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("failed to get current weather")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CurrentWeatherResponse{
		Temperature: current.Temperature,
		LocalTime:   current.LocalTime,
	})
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'city' is required")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'date' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	forecast, err := h.weatherService.GetForecast(ctx, city, date)
	if err != nil {
		log.Error().Err(err).Str("city", city).Str("date", date).Msg("failed to get forecast")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ForecastResponse{
		MinTemperature: forecast.MinTemperature,
		MaxTemperature: forecast.MaxTemperature,
	})
}

func (h *WeatherHandler) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var request CreateOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.validate.Struct(request); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stored, err := h.weatherService.SetOverride(ctx, request.City, request.Date, weather.ForecastRange{
		MinTemperature: *request.MinTemperature,
		MaxTemperature: *request.MaxTemperature,
	})
	if err != nil {
		log.Error().Err(err).Str("city", request.City).Str("date", request.Date).Msg("failed to store forecast override")
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ForecastResponse{
		MinTemperature: stored.MinTemperature,
		MaxTemperature: stored.MaxTemperature,
	})
}
