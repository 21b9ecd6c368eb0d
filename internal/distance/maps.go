package distance

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/fahrwerk/pricing/internal/domain"
)

const metersPerKm = 1000.0

// MapsEstimator resolves road distances via the Google Maps Directions API.
type MapsEstimator struct {
	client *maps.Client
	region string
}

// NewMapsEstimator creates a Maps-backed estimator with the given API key.
func NewMapsEstimator(apiKey, region string) (*MapsEstimator, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsEstimator{client: client, region: region}, nil
}

// EstimateDistance queries driving directions and returns the first leg's
// distance in km.
func (e *MapsEstimator) EstimateDistance(ctx context.Context, from, to string) (domain.DistanceEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      from,
		Destination: to,
		Mode:        maps.TravelModeDriving,
		Region:      e.region,
	}

	routes, _, err := e.client.Directions(ctx, r)
	if err != nil {
		return domain.DistanceEstimate{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return domain.DistanceEstimate{}, fmt.Errorf("%w: %s", domain.ErrUnknownRoute, RouteKey(from, to))
	}

	leg := routes[0].Legs[0]
	return domain.DistanceEstimate{
		Km:     float64(leg.Distance.Meters) / metersPerKm,
		Source: domain.SourceMaps,
	}, nil
}
