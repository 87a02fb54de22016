package ports

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

// Contract for the external travel-time-index model.
//
// The returned index is the raw value parsed from the service response. It may
// be non-positive or NaN when the service answers with garbage; callers are
// responsible for clamping before use. A structurally missing index is an
// error, never a value.
type TravelTimeEstimator interface {
	TravelTimeIndex(ctx context.Context, features domain.TrafficFeatures) (float64, error)
}
