package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/obs"
)

// HTTPEstimator calls the separately-hosted regression service that converts
// the ten traffic features into a travel time index. The service is a black
// box: only the presence of a numeric travel_time_index field is validated
// here. Out-of-range values pass through for the orchestrator to clamp.
type HTTPEstimator struct {
	session  *http.Client
	endpoint string
}

func NewHTTPEstimator(endpoint string) *HTTPEstimator {
	return &HTTPEstimator{
		session:  &http.Client{Timeout: 20 * time.Second},
		endpoint: endpoint,
	}
}

// TravelTimeIndex posts the feature set and parses the response index.
// An absent field is an EstimatorError; a present-but-garbage value becomes
// NaN so the caller can apply the neutral-multiplier clamp.
func (e *HTTPEstimator) TravelTimeIndex(
	ctx context.Context,
	features domain.TrafficFeatures,
) (_ float64, err error) {
	defer obs.Time("estimator.travelTimeIndex")(&err)

	payload, err := json.Marshal(features)
	if err != nil {
		return 0, &domain.EstimatorError{Detail: "marshal features", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, &domain.EstimatorError{Detail: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := e.session.Do(req)
	if err != nil {
		return 0, &domain.EstimatorError{Detail: "ML service unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return 0, &domain.EstimatorError{
			Detail: "ML service returned status " + strconv.Itoa(resp.StatusCode) + ": " + strings.TrimSpace(string(b)),
		}
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, &domain.EstimatorError{Detail: "decode ML service response", Err: err}
	}

	v, ok := decoded["travel_time_index"]
	if !ok {
		return 0, &domain.EstimatorError{Detail: "ML service did not return travel_time_index"}
	}

	return toFloat(v), nil
}

// toFloat mirrors a loose parseFloat: numbers pass through, numeric strings
// parse, everything else is NaN.
func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
