package forecastoverride

import (
	"time"
)

// ForecastOverride is a user-submitted forecast for one (city, date) key. It
// supersedes cached and provider data until replaced; there is no expiry.
type ForecastOverride struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	City           string    `json:"city" gorm:"uniqueIndex:idx_city_date;index:idx_city"`
	Date           time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_city_date"`
	MinTemperature float64   `json:"min_temperature" gorm:"column:min_temperature"`
	MaxTemperature float64   `json:"max_temperature" gorm:"column:max_temperature"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ForecastOverride) TableName() string {
	return "forecast_overrides"
}
