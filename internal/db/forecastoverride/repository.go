package forecastoverride

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/melixz/WeatherAPI/internal/weather"
)

type Repository interface {
	Find(city string, date time.Time) (*ForecastOverride, error)
	Upsert(city string, date time.Time, forecast weather.ForecastRange) (*ForecastOverride, error)
}

type OverrideSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &OverrideSQLRepository{db: db}
}

// Find returns (nil, nil) when no override exists for the key. A store failure
// is returned as an error so it cannot be confused with absence.
func (r *OverrideSQLRepository) Find(city string, date time.Time) (*ForecastOverride, error) {
	var override ForecastOverride
	err := r.db.Where("city = ? AND date = ?", city, date).First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

// Upsert writes the override for (city, date), last write wins.
func (r *OverrideSQLRepository) Upsert(city string, date time.Time, forecast weather.ForecastRange) (*ForecastOverride, error) {
	override := ForecastOverride{
		City:           city,
		Date:           date,
		MinTemperature: forecast.MinTemperature,
		MaxTemperature: forecast.MaxTemperature,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_temperature", "max_temperature", "updated_at"}),
	}).Create(&override).Error
	if err != nil {
		return nil, err
	}

	return &override, nil
}
