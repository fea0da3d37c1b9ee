// Package resolver implements the route availability and date
// eligibility logic of the booking service: deriving reachable cities
// from the line catalog, resolving per-route date constraints, deciding
// whether a calendar date is selectable, and filtering lines for a
// search. All functions are pure over an already-fetched catalog
// snapshot and never mutate it.
package resolver

import "errors"

// ErrInvalidArgument reports that a required identifying argument (an
// origin or destination city name) was empty. Derivation over an
// unfiltered catalog is a different caller-level operation (AllCities),
// not an empty-argument variant of these.
var ErrInvalidArgument = errors.New("resolver: invalid argument")
