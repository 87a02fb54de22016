package route

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
)

var (
	testStart = domain.Coordinates{Lon: 77.6245, Lat: 12.9352}
	testEnd   = domain.Coordinates{Lon: 77.6190, Lat: 12.9756}
)

func TestRouteDistanceKm(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q, want test-key", got)
		}

		var body directionsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if len(body.Coordinates) != 2 || body.Coordinates[0][0] != testStart.Lon {
			t.Errorf("unexpected coordinates payload: %v", body.Coordinates)
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.Write([]byte(`{"type":"FeatureCollection","features":[{"properties":{"summary":{"distance":5432.1,"duration":1014.3}}}]}`))
	}))
	defer ts.Close()

	p := NewORSDirectionsProvider("test-key")
	p.baseURL = ts.URL

	km, err := p.RouteDistanceKm(context.Background(), testStart, testEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 5.43 {
		t.Fatalf("distance = %v, want 5.43", km)
	}
}

func TestRouteDistanceMissingKey(t *testing.T) {
	p := NewORSDirectionsProvider("")

	_, err := p.RouteDistanceKm(context.Background(), testStart, testEnd)

	var ce *domain.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
	if ce.Setting != "ORS_API_KEY" {
		t.Fatalf("setting = %q, want ORS_API_KEY", ce.Setting)
	}
}

func TestRouteDistanceNoFeatures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer ts.Close()

	p := NewORSDirectionsProvider("test-key")
	p.baseURL = ts.URL

	_, err := p.RouteDistanceKm(context.Background(), testStart, testEnd)

	var re *domain.RouteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RouteError, got %T: %v", err, err)
	}
}

func TestRouteDistanceUpstreamErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":2010,"message":"point not found"}}`, http.StatusNotFound)
	}))
	defer ts.Close()

	p := NewORSDirectionsProvider("test-key")
	p.baseURL = ts.URL

	_, err := p.RouteDistanceKm(context.Background(), testStart, testEnd)

	var re *domain.RouteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RouteError, got %T: %v", err, err)
	}
	if !strings.Contains(re.Detail, "point not found") {
		t.Fatalf("detail %q does not carry the upstream error", re.Detail)
	}
}
