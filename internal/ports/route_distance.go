package ports

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

// Contract for retrieving driving distance between two coordinate pairs.
type RouteDistanceProvider interface {
	// Return driving distance in kilometers, rounded to 2 decimal places.
	RouteDistanceKm(ctx context.Context, start, end domain.Coordinates) (float64, error)
}
