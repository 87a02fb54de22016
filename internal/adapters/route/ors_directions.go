package route

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/obs"
	"go.uber.org/zap"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary *struct {
				Distance float64 `json:"distance"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// ORSDirectionsProvider retrieves driving distance from the OpenRouteService
// directions endpoint. It holds no state beyond the HTTP session and is safe
// for concurrent use.
type ORSDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
}

// NewORSDirectionsProvider accepts an empty key; the credential check happens
// per call so the rest of the service (health checks included) stays up when
// the operator has not configured ORS yet.
func NewORSDirectionsProvider(apiKey string) *ORSDirectionsProvider {
	return &ORSDirectionsProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
	}
}

// RouteDistanceKm requests a single route between start and end and extracts
// the total distance from the first returned feature's summary, converted to
// kilometers and rounded to 2 decimal places.
func (o *ORSDirectionsProvider) RouteDistanceKm(
	ctx context.Context,
	start domain.Coordinates,
	end domain.Coordinates,
) (_ float64, err error) {
	defer obs.Time("ors.routeDistance")(&err)

	if o.apiKey == "" {
		return 0, &domain.ConfigurationError{Setting: "ORS_API_KEY"}
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{start.CoordsToList(), end.CoordsToList()},
	})
	if err != nil {
		return 0, &domain.RouteError{Detail: "marshal directions request", Err: err}
	}

	req, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, &domain.RouteError{Detail: "create directions request", Err: err}
	}

	resp, err := o.do(req)
	if err != nil {
		return 0, &domain.RouteError{Detail: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, &domain.RouteError{Detail: "decode directions response", Err: err}
	}

	if len(decoded.Features) == 0 || decoded.Features[0].Properties.Summary == nil {
		return 0, &domain.RouteError{Detail: "invalid response structure from ORS"}
	}

	meters := decoded.Features[0].Properties.Summary.Distance
	km := math.Round(meters/1000.0*100) / 100

	logger.Debug("route distance resolved", zap.Float64("km", km))

	return km, nil
}
