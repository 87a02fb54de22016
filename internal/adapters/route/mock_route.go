package route

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

type MockRouteDistance struct {
	Km  float64
	Err error
}

func (m *MockRouteDistance) RouteDistanceKm(ctx context.Context, start, end domain.Coordinates) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}

	return m.Km, nil
}
