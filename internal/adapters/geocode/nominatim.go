package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/domain"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/logger"
	"github.com/Rajesh-cpy/bengaluru-traffic-predictor/internal/platform/obs"
	"go.uber.org/zap"
)

// Nominatim returns lat/lon as strings inside a top-level array.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimGeocoder resolves free-text place names against the OpenStreetMap
// Nominatim search endpoint, scoped to a single city. No credential is
// required, but Nominatim's usage policy asks for an identifying User-Agent,
// so the contact address is embedded in it.
type NominatimGeocoder struct {
	session     *http.Client
	baseURL     string
	citySuffix  string
	countryCode string
	userAgent   string
}

func NewNominatimGeocoder(contact string) *NominatimGeocoder {
	if strings.TrimSpace(contact) == "" {
		contact = "anonymous_user@example.com"
	}

	return &NominatimGeocoder{
		session:     &http.Client{Timeout: 7 * time.Second},
		baseURL:     "https://nominatim.openstreetmap.org",
		citySuffix:  "Bengaluru, Karnataka, India",
		countryCode: "in",
		userAgent:   fmt.Sprintf("TrafficApp/1.0 (%s)", contact),
	}
}

// Geocode resolves one place name to coordinates, taking the first match only.
// There is no sensible coordinate fallback, so every failure surfaces as a
// GeocodeError carrying the original place name.
func (g *NominatimGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time("nominatim.geocode")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place, Err: err}
	}

	q := req.URL.Query()
	q.Set("q", fmt.Sprintf("%s, %s", place, g.citySuffix))
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", g.countryCode)
	q.Set("addressdetails", "0")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, &domain.GeocodeError{
			Place: place,
			Err:   fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{
			Place: place,
			Err:   fmt.Errorf("decode search response: %w", err),
		}
	}

	if len(results) == 0 {
		return domain.Coordinates{}, &domain.GeocodeError{
			Place: place,
			Err:   fmt.Errorf("no results for %q", place),
		}
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinates{}, &domain.GeocodeError{
			Place: place,
			Err:   fmt.Errorf("invalid coordinates lat=%q lon=%q", results[0].Lat, results[0].Lon),
		}
	}

	logger.Debug("geocoded place",
		zap.String("place", place),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
	)

	return domain.Coordinates{Lon: lon, Lat: lat}, nil
}
