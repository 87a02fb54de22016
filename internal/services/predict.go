package services

import (
	"context"
	"math"
	"sync"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/obs"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/ports"
	"go.uber.org/zap"
)

const (
	// Typical uncongested driving speed in Bengaluru, used for free-flow time.
	assumedFreeFlowSpeedKmh = 45.0
	// Flat buffer added on top of the scaled travel time.
	addedBufferMinutes = 20.0
)

// Predictor chains the four external collaborators into one travel-time
// estimate. All state is request-scoped; the struct only holds the injected
// ports and is safe for concurrent use.
type Predictor struct {
	Geocoder  ports.Geocoder
	Distance  ports.RouteDistanceProvider
	Context   ports.TrafficContextProvider
	Estimator ports.TravelTimeEstimator
}

// Predict runs the pipeline: geocode both endpoints, fetch route distance,
// fetch traffic context, query the estimator, apply the time formula.
//
// The two geocode calls and the context call are independent and run
// concurrently. Geocoding, routing, and estimator failures abort the request;
// the context provider degrades to defaults internally and never fails.
func (p *Predictor) Predict(ctx context.Context, trip domain.Trip) (_ *domain.Prediction, err error) {
	defer obs.Time("predict")(&err)

	var (
		wg               sync.WaitGroup
		start, end       domain.Coordinates
		startErr, endErr error
		features         domain.TrafficFeatures
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		start, startErr = p.Geocoder.Geocode(ctx, trip.From)
	}()
	go func() {
		defer wg.Done()
		end, endErr = p.Geocoder.Geocode(ctx, trip.To)
	}()
	go func() {
		defer wg.Done()
		features = p.Context.TrafficFeatures(ctx, trip)
	}()
	wg.Wait()

	if startErr != nil {
		return nil, startErr
	}
	if endErr != nil {
		return nil, endErr
	}

	distanceKm, err := p.Distance.RouteDistanceKm(ctx, start, end)
	if err != nil {
		return nil, err
	}

	index, err := p.Estimator.TravelTimeIndex(ctx, features)
	if err != nil {
		return nil, err
	}

	// A present-but-garbage or non-positive index is merely out of range, not
	// structurally missing: clamp to the neutral multiplier and continue.
	if math.IsNaN(index) || index <= 0 {
		logger.Warn("invalid travel time index from estimator; clamping to 1.0",
			zap.Float64("index", index),
		)
		index = 1.0
	}

	freeFlowMinutes := distanceKm / assumedFreeFlowSpeedKmh * 60
	finalMinutes := freeFlowMinutes*index + addedBufferMinutes

	logger.Info("prediction computed",
		zap.String("from", trip.From),
		zap.String("to", trip.To),
		zap.Float64("distance_km", distanceKm),
		zap.Float64("index", index),
		zap.Float64("minutes", finalMinutes),
	)

	return &domain.Prediction{
		Trip:             trip,
		DistanceKm:       distanceKm,
		EstimatedMinutes: int(math.Round(finalMinutes)),
		Features:         features,
		WeatherSummary:   features.WeatherConditions,
	}, nil
}
