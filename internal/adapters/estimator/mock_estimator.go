package estimator

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

type MockEstimator struct {
	Index float64
	Err   error
}

func (m *MockEstimator) TravelTimeIndex(ctx context.Context, features domain.TrafficFeatures) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}

	return m.Index, nil
}
