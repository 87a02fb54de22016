package domain

import "fmt"

// GeocodeError means a place name could not be resolved to coordinates.
// There is no sensible coordinate default, so this aborts the request.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("could not geocode %q: check the spelling or be more specific", e.Place)
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// ConfigurationError marks a missing required credential. It distinguishes
// operator misconfiguration from runtime faults upstream.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration %s", e.Setting)
}

// RouteError means the directions service was unreachable or returned an
// unusable shape. Distance is load-bearing for the time formula, so there is
// no fallback.
type RouteError struct {
	Detail string
	Err    error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("failed to get route distance: %s", e.Detail)
}

func (e *RouteError) Unwrap() error { return e.Err }

// EstimatorError means the travel-time-index service failed or its response
// did not contain the required numeric field.
type EstimatorError struct {
	Detail string
	Err    error
}

func (e *EstimatorError) Error() string {
	return fmt.Sprintf("travel time estimator error: %s", e.Detail)
}

func (e *EstimatorError) Unwrap() error { return e.Err }
