package estimator

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

func estimatorServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var features map[string]any
		if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
			t.Errorf("decode features payload: %v", err)
		}
		if len(features) != 10 {
			t.Errorf("payload has %d keys, want all 10 features", len(features))
		}
		if _, ok := features["Traffic Volume"]; !ok {
			t.Error("payload missing Traffic Volume key")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestTravelTimeIndex(t *testing.T) {
	ts := estimatorServer(t, `{"travel_time_index": 1.4}`)
	defer ts.Close()

	got, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.4 {
		t.Fatalf("index = %v, want 1.4", got)
	}
}

func TestTravelTimeIndexNegativePassesThrough(t *testing.T) {
	// Out-of-range values are the orchestrator's clamp to make, not an error here.
	ts := estimatorServer(t, `{"travel_time_index": -3}`)
	defer ts.Close()

	got, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -3 {
		t.Fatalf("index = %v, want -3", got)
	}
}

func TestTravelTimeIndexStringValue(t *testing.T) {
	ts := estimatorServer(t, `{"travel_time_index": "2.5"}`)
	defer ts.Close()

	got, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2.5 {
		t.Fatalf("index = %v, want 2.5", got)
	}
}

func TestTravelTimeIndexGarbageValueBecomesNaN(t *testing.T) {
	ts := estimatorServer(t, `{"travel_time_index": "soon"}`)
	defer ts.Close()

	got, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Fatalf("index = %v, want NaN", got)
	}
}

func TestTravelTimeIndexMissingField(t *testing.T) {
	ts := estimatorServer(t, `{"prediction": 1.4}`)
	defer ts.Close()

	_, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())
	if err == nil {
		t.Fatal("expected error for missing travel_time_index")
	}

	var ee *domain.EstimatorError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EstimatorError, got %T: %v", err, err)
	}
}

func TestTravelTimeIndexServiceDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not loaded"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewHTTPEstimator(ts.URL).TravelTimeIndex(context.Background(), domain.DefaultTrafficFeatures())

	var ee *domain.EstimatorError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EstimatorError, got %T: %v", err, err)
	}
}
