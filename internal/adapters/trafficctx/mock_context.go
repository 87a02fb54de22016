package trafficctx

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

type MockContextProvider struct {
	Features domain.TrafficFeatures
}

func (m *MockContextProvider) TrafficFeatures(ctx context.Context, trip domain.Trip) domain.TrafficFeatures {
	return m.Features
}
