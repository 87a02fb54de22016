package ports

import (
	"context"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

// Contract for producing the ten-field traffic feature set for a trip.
//
// TrafficFeatures never fails: any internal error resolves to the documented
// default feature set, so callers always receive a complete, typed value.
type TrafficContextProvider interface {
	TrafficFeatures(ctx context.Context, trip domain.Trip) domain.TrafficFeatures
}
