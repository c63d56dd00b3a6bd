package handlers

type CurrentWeatherResponse struct {
	Temperature float64 `json:"temperature"`
	LocalTime   string  `json:"local_time"`
}

type ForecastResponse struct {
	MinTemperature float64 `json:"min_temperature"`
	MaxTemperature float64 `json:"max_temperature"`
}

// CreateOverrideRequest carries a user-submitted forecast. Temperatures are
// pointers so a legitimate 0.0 still satisfies the required rule.
type CreateOverrideRequest struct {
	City           string   `json:"city" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	MinTemperature *float64 `json:"min_temperature" validate:"required,gte=-100,lte=100"`
	MaxTemperature *float64 `json:"max_temperature" validate:"required,gte=-100,lte=100"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
