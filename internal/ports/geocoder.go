package ports

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

// Contract for resolving a free-text place name to geographic coordinates.
// Implementations are scoped to a single city/region.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
