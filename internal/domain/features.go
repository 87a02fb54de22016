package domain

// TrafficFeatures is the fixed ten-field description of road conditions
// consumed by the travel-time-index model. JSON names match the column names
// the model was trained on, so they must not change.
type TrafficFeatures struct {
	WeatherConditions       string  `json:"Weather Conditions"`
	IncidentReports         int     `json:"Incident Reports"`
	RoadworkActivity        string  `json:"Roadwork and Construction Activity"`
	TrafficVolume           int     `json:"Traffic Volume"`
	AverageSpeed            float64 `json:"Average Speed"`
	CongestionLevel         float64 `json:"Congestion Level"`
	RoadCapacityUtilization float64 `json:"Road Capacity Utilization"`
	PublicTransportUsage    int     `json:"Public Transport Usage"`
	ParkingUsage            float64 `json:"Parking Usage"`
	PedestrianCyclistCount  int     `json:"Pedestrian and Cyclist Count"`
}

// DefaultTrafficFeatures returns the feature set used whenever the AI context
// source is unavailable or produces unusable output. Values approximate an
// average weekday in Bengaluru.
func DefaultTrafficFeatures() TrafficFeatures {
	return TrafficFeatures{
		WeatherConditions:       "Clear",
		IncidentReports:         0,
		RoadworkActivity:        "No",
		TrafficVolume:           1500,
		AverageSpeed:            30,
		CongestionLevel:         0.5,
		RoadCapacityUtilization: 0.6,
		PublicTransportUsage:    300,
		ParkingUsage:            0.5,
		PedestrianCyclistCount:  100,
	}
}
