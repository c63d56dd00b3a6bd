package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/melixz/WeatherAPI/internal/api/v1/handlers"
	"github.com/melixz/WeatherAPI/internal/db/forecastoverride"
	"github.com/melixz/WeatherAPI/internal/inmemorycache"
	"github.com/melixz/WeatherAPI/internal/mocks"
	"github.com/melixz/WeatherAPI/internal/service"
	"github.com/melixz/WeatherAPI/internal/weather"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

type testSetup struct {
	handler    *handlers.WeatherHandler
	provider   *mocks.MockOpenWeatherMapService
	repository forecastoverride.Repository
	cache      *inmemorycache.InMemoryCache
	db         *gorm.DB
	now        *time.Time
}

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		err := sharedDB.Migrator().DropTable(&forecastoverride.ForecastOverride{})
		require.NoError(t, err)

		err = sharedDB.AutoMigrate(&forecastoverride.ForecastOverride{})
		require.NoError(t, err)

		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	sqlDB, err := sharedDB.DB()
	require.NoError(t, err)

	err = sqlDB.Ping()
	require.NoError(t, err)

	err = sharedDB.AutoMigrate(&forecastoverride.ForecastOverride{})
	require.NoError(t, err)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

func setupTest(t *testing.T, currentTTL, forecastTTL time.Duration) *testSetup {
	providerMock := mocks.NewMockOpenWeatherMapService(t)

	db, _ := SetupPostgres(t)

	repository := forecastoverride.NewRepository(db)

	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	cache := inmemorycache.NewInMemoryCacheProviderWithClock(func() time.Time {
		return now
	})

	weatherService := service.NewWeatherService(
		providerMock,
		cache,
		repository,
		currentTTL,
		forecastTTL,
	)

	handler := handlers.NewWeatherHandler(weatherService, 10*time.Second)

	return &testSetup{
		handler:    handler,
		provider:   providerMock,
		repository: repository,
		cache:      cache,
		db:         db,
		now:        &now,
	}
}

func getForecast(ts *testSetup, city, date string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/weather/forecast?city="+city+"&date="+date, nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func getCurrent(ts *testSetup, city string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/weather/current?city="+city, nil)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func postOverride(ts *testSetup, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/weather/forecast", strings.NewReader(body))
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func TestWeatherResolution(t *testing.T) {
	_, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("OverrideWinsOverCacheAndProvider", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

		// Populate the cache first so the override has something to shadow.
		ts.provider.On("Forecast", mock.Anything, "paris", date).
			Return(weather.ForecastRange{MinTemperature: 0.0, MaxTemperature: 8.0}, nil).
			Once()

		w := getForecast(ts, "Paris", "20.01.2025")
		assert.Equal(t, http.StatusOK, w.Code)

		w = postOverride(ts, `{"city":"Paris","date":"20.01.2025","min_temperature":-10.5,"max_temperature":5.0}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = getForecast(ts, "Paris", "20.01.2025")
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.ForecastResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, -10.5, response.MinTemperature)
		assert.Equal(t, 5.0, response.MaxTemperature)

		// The provider was only consulted before the override existed.
		ts.provider.AssertNumberOfCalls(t, "Forecast", 1)
	})

	t.Run("ForecastFetchedOnceWithinTTL", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		date := time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)
		fetched := weather.ForecastRange{MinTemperature: -2.0, MaxTemperature: 3.5}

		ts.provider.On("Forecast", mock.Anything, "berlin", date).Return(fetched, nil).Once()

		first := getForecast(ts, "Berlin", "21.01.2025")
		second := getForecast(ts, "Berlin", "21.01.2025")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("CurrentWeatherCachedWithinTTLAndRefetchedAfter", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		ts.provider.On("CurrentWeather", mock.Anything, "london").
			Return(weather.CurrentWeather{Temperature: 8.0, LocalTime: "11:00"}, nil).
			Twice()

		first := getCurrent(ts, "London")
		second := getCurrent(ts, "London")

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
		ts.provider.AssertNumberOfCalls(t, "CurrentWeather", 1)

		*ts.now = ts.now.Add(5*time.Minute + time.Second)

		third := getCurrent(ts, "London")
		assert.Equal(t, http.StatusOK, third.Code)
		ts.provider.AssertNumberOfCalls(t, "CurrentWeather", 2)
	})

	t.Run("InvertedOverrideRejectedAndStoreUntouched", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		w := postOverride(ts, `{"city":"Rome","date":"22.01.2025","min_temperature":5.0,"max_temperature":2.0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int64
		require.NoError(t, ts.db.Model(&forecastoverride.ForecastOverride{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("OverrideLastWriteWins", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		w := postOverride(ts, `{"city":"Madrid","date":"23.01.2025","min_temperature":1.0,"max_temperature":9.0}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = postOverride(ts, `{"city":"Madrid","date":"23.01.2025","min_temperature":2.5,"max_temperature":7.5}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = getForecast(ts, "Madrid", "23.01.2025")
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.ForecastResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2.5, response.MinTemperature)
		assert.Equal(t, 7.5, response.MaxTemperature)

		var count int64
		require.NoError(t, ts.db.Model(&forecastoverride.ForecastOverride{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("CityNameNormalizedForOverrideLookup", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		w := postOverride(ts, `{"city":"  New   York ","date":"24.01.2025","min_temperature":-4.0,"max_temperature":2.0}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = getForecast(ts, "NEW+YORK", "24.01.2025")
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.ForecastResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, -4.0, response.MinTemperature)
		assert.Equal(t, 2.0, response.MaxTemperature)
	})

	t.Run("ProviderFailureSurfacesAsServiceUnavailable", func(t *testing.T) {
		ts := setupTest(t, 5*time.Minute, time.Hour)

		ts.provider.On("CurrentWeather", mock.Anything, "oslo").
			Return(weather.CurrentWeather{}, weather.NewUpstreamUnavailable("weather provider request failed", nil)).
			Once()

		w := getCurrent(ts, "Oslo")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Errors, 1)
		assert.Equal(t, "UPSTREAM_UNAVAILABLE", response.Errors[0].Code)
	})
}
