package trafficctx

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

// mergeFeatures lays the parsed object over the default feature set: parsed
// values override defaults, keys the model omitted keep their default, and
// every field is coerced to its documented type with a per-field default
// fallback when coercion yields nothing usable. The result always carries all
// ten fields.
func mergeFeatures(raw map[string]any) domain.TrafficFeatures {
	d := domain.DefaultTrafficFeatures()

	return domain.TrafficFeatures{
		WeatherConditions:       coerceString(raw["Weather Conditions"], d.WeatherConditions),
		IncidentReports:         coerceInt(raw["Incident Reports"], d.IncidentReports),
		RoadworkActivity:        coerceString(raw["Roadwork and Construction Activity"], d.RoadworkActivity),
		TrafficVolume:           coerceInt(raw["Traffic Volume"], d.TrafficVolume),
		AverageSpeed:            coerceFloat(raw["Average Speed"], d.AverageSpeed),
		CongestionLevel:         coerceFloat(raw["Congestion Level"], d.CongestionLevel),
		RoadCapacityUtilization: coerceFloat(raw["Road Capacity Utilization"], d.RoadCapacityUtilization),
		PublicTransportUsage:    coerceInt(raw["Public Transport Usage"], d.PublicTransportUsage),
		ParkingUsage:            coerceFloat(raw["Parking Usage"], d.ParkingUsage),
		PedestrianCyclistCount:  coerceInt(raw["Pedestrian and Cyclist Count"], d.PedestrianCyclistCount),
	}
}

func coerceFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return def
		}
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return f
	default:
		return def
	}
}

func coerceInt(v any, def int) int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return def
		}
		return int(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return int(f)
	default:
		return def
	}
}

func coerceString(v any, def string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}

	return s
}
