package geocode

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(places map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{m: places}
}

func (g *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	c, ok := g.m[place]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place}
	}

	return c, nil
}
