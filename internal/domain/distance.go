package domain

import (
	"context"
	"errors"
)

// ErrUnknownRoute indicates an estimator has no answer for a city pair.
var ErrUnknownRoute = errors.New("no known distance for route")

// DistanceSource identifies which estimator produced a distance.
type DistanceSource string

const (
	SourceRequest DistanceSource = "request" // caller supplied the distance
	SourceMaps    DistanceSource = "maps"
	SourceTable   DistanceSource = "table"
	SourceRandom  DistanceSource = "random"
	SourceCache   DistanceSource = "cache"
)

// DistanceEstimate is an approximate road distance between two places.
type DistanceEstimate struct {
	Km     float64        `json:"km"`
	Source DistanceSource `json:"source"`
}

// DistanceEstimator resolves an approximate road distance between two place
// names. Implementations may be impure (live API, randomized fallback), so
// callers must not rely on repeated calls agreeing.
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, from, to string) (DistanceEstimate, error)
}
