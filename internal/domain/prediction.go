package domain

// Trip identifies one requested journey. Date and time stay in the free-text
// form the caller provided; they are forwarded to the context generator as-is.
type Trip struct {
	From string
	To   string
	Date string
	Time string
}

// Prediction is the final request-scoped result of the pipeline.
type Prediction struct {
	Trip             Trip
	DistanceKm       float64
	EstimatedMinutes int
	Features         TrafficFeatures
	WeatherSummary   string
}
