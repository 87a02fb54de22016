package trafficctx

import (
	"fmt"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

const systemPrompt = `You are an expert Bengaluru traffic data provider. Simulate real-time conditions similar to Google Maps for the specific route and time provided. Output ONLY the JSON object requested, nothing else.`

// userPrompt embeds the trip, the exact ten-key schema with type and range
// hints, and one fully-worked example object. The key names must match the
// model's training columns exactly.
func userPrompt(trip domain.Trip) string {
	return fmt.Sprintf(`Provide realistic estimates for traffic conditions in Bengaluru, India for the following trip:
- Origin: %s
- Destination: %s
- Date: %s
- Time: %s

Return ONLY a single, valid JSON object containing EXACTLY these 10 keys:
"Weather Conditions" (string, e.g., "Clear", "Cloudy", "Rain"),
"Incident Reports" (integer, 0-3, estimate based on time/location),
"Roadwork and Construction Activity" (string, "Yes" or "No", estimate based on typical areas),
"Traffic Volume" (integer, estimated vehicles per hour for this route/time),
"Average Speed" (number, estimated average driving speed in km/h considering traffic),
"Congestion Level" (number, 0.0-1.0),
"Road Capacity Utilization" (number, 0.0-1.0),
"Public Transport Usage" (integer, relative index 100-1000),
"Parking Usage" (number, 0.0-1.0, impact near destination),
"Pedestrian and Cyclist Count" (integer, relative index 0-500)

Example: {"Weather Conditions": "Haze", "Incident Reports": 1, "Roadwork and Construction Activity": "Yes", "Traffic Volume": 2900, "Average Speed": 15.0, "Congestion Level": 0.9, "Road Capacity Utilization": 0.95, "Public Transport Usage": 700, "Parking Usage": 0.85, "Pedestrian and Cyclist Count": 200}`,
		trip.From, trip.To, trip.Date, trip.Time)
}
