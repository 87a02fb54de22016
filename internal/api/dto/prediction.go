package dto

import "github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"

type PredictRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
	Time string `json:"time"`
}

type RouteSummary struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	DistanceKm float64 `json:"distance_km"`
}

// PredictResponse reuses domain.TrafficFeatures directly: its JSON names are
// the model's column names and double as the public feature keys.
type PredictResponse struct {
	EstimatedTimeMinutes int                    `json:"estimated_time_minutes"`
	Route                RouteSummary           `json:"route"`
	Features             domain.TrafficFeatures `json:"features"`
	WeatherSummary       string                 `json:"weather_summary"`
}
