package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/fahrwerk/pricing/internal/observability"
)

// QuoteService orchestrates distance resolution and fare calculation for the
// marketplace front end.
type QuoteService struct {
	calculator *FareCalculator
	distances  DistanceEstimator
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(calculator *FareCalculator, distances DistanceEstimator) *QuoteService {
	return &QuoteService{
		calculator: calculator,
		distances:  distances,
	}
}

// QuoteRequest asks for a consumer-facing price. Either DistanceKm or a
// From/To pair must be present; an explicit distance wins.
type QuoteRequest struct {
	Vehicle    Vehicle
	From       string
	To         string
	DistanceKm float64
	TotalSeats int
}

// Quote is the consumer-facing answer: the full breakdown plus the plain
// per-person number the listing cards show.
type Quote struct {
	Breakdown      PriceBreakdown `json:"breakdown"`
	PricePerPerson float64        `json:"price_per_person"`
	DistanceKm     float64        `json:"distance_km"`
	DistanceSource DistanceSource `json:"distance_source"`
	FormattedTotal string         `json:"formatted_total"`
}

// TripCostRequest asks for a driver-side cost estimate, optionally resolving
// the distance from a city pair.
type TripCostRequest struct {
	Params TripCostParams
	From   string
	To     string
}

// Quote computes the per-person price for a prospective passenger.
func (s *QuoteService) Quote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	distance, source, err := s.resolveDistance(ctx, req.DistanceKm, req.From, req.To)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)

	breakdown := s.calculator.DetailedPricePerPerson(ctx, req.Vehicle, distance, req.TotalSeats)
	if breakdown.Outcome == OutcomeFallback {
		logger.Warn("fallback breakdown served",
			observability.String("fuel_type", string(req.Vehicle.FuelType)),
			observability.Float64("distance_km", distance),
			observability.Int("total_seats", req.TotalSeats))
	}

	price := s.calculator.PricePerPerson(ctx, &req.Vehicle, distance, req.TotalSeats)

	logger.Info("quote computed",
		observability.Float64("distance_km", distance),
		observability.String("distance_source", string(source)),
		observability.Float64("total_price", breakdown.TotalPrice))

	return &Quote{
		Breakdown:      breakdown,
		PricePerPerson: price,
		DistanceKm:     distance,
		DistanceSource: source,
		FormattedTotal: FormatCurrency(breakdown.TotalPrice),
	}, nil
}

// EstimateTripCost computes the driver-side estimate, resolving the distance
// from the route when the caller did not supply one.
func (s *QuoteService) EstimateTripCost(ctx context.Context, req *TripCostRequest) (*TripCostEstimate, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	params := req.Params
	if params.DistanceKm == 0 && req.From != "" && req.To != "" {
		distance, source, err := s.resolveDistance(ctx, 0, req.From, req.To)
		if err != nil {
			return nil, err
		}
		params.DistanceKm = distance

		observability.FromContext(ctx).Info("trip distance resolved",
			observability.Float64("distance_km", distance),
			observability.String("distance_source", string(source)))
	}

	estimate, err := s.calculator.TripCost(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("trip cost estimate failed: %w", err)
	}

	return &estimate, nil
}

func (s *QuoteService) resolveDistance(
	ctx context.Context,
	distanceKm float64,
	from, to string,
) (float64, DistanceSource, error) {
	if distanceKm > 0 {
		return distanceKm, SourceRequest, nil
	}

	if from == "" || to == "" {
		return 0, "", errors.New("either distance_km or a from/to pair is required")
	}

	if s.distances == nil {
		return 0, "", errors.New("no distance estimator configured")
	}

	estimate, err := s.distances.EstimateDistance(ctx, from, to)
	if err != nil {
		return 0, "", fmt.Errorf("distance estimation failed: %w", err)
	}

	return estimate.Km, estimate.Source, nil
}
