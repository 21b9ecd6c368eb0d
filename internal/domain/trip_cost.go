package domain

import (
	"context"
	"errors"
	"fmt"
)

// tripCostSplitPersons is the fixed split used by the driver-side estimate
// (driver + 3 passengers). It intentionally ignores the vehicle's real seat
// count and therefore diverges from the consumer breakdown's seats+1 divisor.
const tripCostSplitPersons = 4

var (
	ErrInvalidDistance    = errors.New("distance must be greater than zero")
	ErrInvalidConsumption = errors.New("consumption must be greater than zero")
	ErrUnknownStyle       = errors.New("unknown driving style")
	ErrUnknownLoad        = errors.New("unknown load")
)

// TripCostParams are the inputs to the driver-facing cost estimator.
type TripCostParams struct {
	Vehicle      Vehicle
	DistanceKm   float64
	DrivingStyle DrivingStyle // empty means StyleNormal
	Load         Load         // empty means LoadEmpty
	FuelPrice    float64      // CHF per unit; 0 means use the price table
}

// TripCost estimates total and per-person fuel cost for a trip, adjusted for
// driving behavior and vehicle load. Used by the offer-ride form to suggest
// a price while the driver configures a new ride.
//
// Unlike the consumer breakdown, this estimator rejects bad input outright:
// a zero distance would make the per-km cost undefined, so distance and
// consumption must both be positive.
func (c *FareCalculator) TripCost(ctx context.Context, params TripCostParams) (TripCostEstimate, error) {
	if !isFinite(params.DistanceKm) || params.DistanceKm <= 0 {
		return TripCostEstimate{}, fmt.Errorf("%w: %v", ErrInvalidDistance, params.DistanceKm)
	}
	if !isFinite(params.Vehicle.Consumption) || params.Vehicle.Consumption <= 0 {
		return TripCostEstimate{}, fmt.Errorf("%w: %v", ErrInvalidConsumption, params.Vehicle.Consumption)
	}

	style := params.DrivingStyle
	if style == "" {
		style = StyleNormal
	}
	load := params.Load
	if load == "" {
		load = LoadEmpty
	}

	styleFactor, err := drivingStyleMultiplier(style)
	if err != nil {
		return TripCostEstimate{}, err
	}
	loadFactor, err := loadMultiplier(load)
	if err != nil {
		return TripCostEstimate{}, err
	}

	pricePerUnit := params.FuelPrice
	if pricePerUnit == 0 {
		pricePerUnit, err = c.prices.PricePerUnit(ctx, params.Vehicle.FuelType)
		if err != nil {
			return TripCostEstimate{}, fmt.Errorf("resolve fuel price: %w", err)
		}
	}

	adjustedConsumption := params.Vehicle.Consumption * styleFactor * loadFactor
	totalFuelConsumption := (adjustedConsumption / 100) * params.DistanceKm
	totalFuelCost := totalFuelConsumption * pricePerUnit

	styleAdjustment := (styleFactor - 1) * 100
	loadAdjustment := (loadFactor - 1) * 100

	return TripCostEstimate{
		TotalFuelConsumption: totalFuelConsumption,
		TotalFuelCost:        totalFuelCost,
		CostPerKm:            totalFuelCost / params.DistanceKm,
		CostPerPerson:        totalFuelCost / tripCostSplitPersons,
		BaseConsumption:      params.Vehicle.Consumption,
		AdjustedConsumption:  adjustedConsumption,
		FuelType:             params.Vehicle.FuelType.Label(),
		Unit:                 params.Vehicle.FuelType.Unit(),
		Breakdown: AdjustmentBreakdown{
			DrivingStyleAdjustment: styleAdjustment,
			LoadAdjustment:         loadAdjustment,
			TotalAdjustment:        styleAdjustment + loadAdjustment,
		},
	}, nil
}

func drivingStyleMultiplier(style DrivingStyle) (float64, error) {
	switch style {
	case StyleEco:
		return 0.85, nil
	case StyleNormal:
		return 1.0, nil
	case StyleSport:
		return 1.25, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}

func loadMultiplier(load Load) (float64, error) {
	switch load {
	case LoadEmpty:
		return 1.0, nil
	case LoadHalf:
		return 1.10, nil
	case LoadFull:
		return 1.20, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownLoad, load)
	}
}
