package domain

import (
	"context"
	"math"
)

// Defaulted consumption per 100km when the vehicle does not report one.
const (
	defaultPetrolConsumption   = 6.5
	defaultDieselConsumption   = 5.5
	defaultElectricConsumption = 18.0
	defaultConsumption         = 6.0
)

// FareParams are the marketplace-wide pricing knobs. They are loaded from
// configuration at startup so rates can change without a redeploy.
type FareParams struct {
	MinimumFare        float64 // CHF floor for the per-person fuel share
	PlatformFeeRate    float64 // commission on the post-surcharge subtotal
	InsuranceSurcharge float64 // flat CHF per-person add-on
	TaxRate            float64 // consumption tax on the full pre-tax subtotal
	FallbackPrice      float64 // flat price when no computation is possible
}

// DefaultFareParams returns the current production rates.
func DefaultFareParams() FareParams {
	return FareParams{
		MinimumFare:        3.00,
		PlatformFeeRate:    0.15,
		InsuranceSurcharge: 1.50,
		TaxRate:            0.081,
		FallbackPrice:      5.00,
	}
}

// FareCalculator computes consumer-facing per-person prices and driver-facing
// trip cost estimates. It is stateless apart from the injected price table.
type FareCalculator struct {
	prices FuelPriceTable
	params FareParams
}

// NewFareCalculator creates a fare calculator (DI constructor).
func NewFareCalculator(prices FuelPriceTable, params FareParams) *FareCalculator {
	return &FareCalculator{
		prices: prices,
		params: params,
	}
}

// DetailedPricePerPerson computes the itemized, chargeable per-person price
// for a ride. It is total: invalid or unrepresentable inputs yield the fixed
// fallback breakdown (tagged OutcomeFallback) instead of an error, so price
// rendering can never fail mid-render.
//
// The fee layering is deliberate and load-bearing: minimum-fare surcharge,
// then platform fee, then insurance, then tax on everything including fee and
// insurance. All intermediate math runs at full precision; each returned
// field is rounded to 2 decimals independently.
func (c *FareCalculator) DetailedPricePerPerson(
	ctx context.Context,
	vehicle Vehicle,
	distanceKm float64,
	totalSeats int,
) PriceBreakdown {
	if !isFinite(distanceKm) || distanceKm < 0 || !isFinite(vehicle.Consumption) || vehicle.Consumption < 0 {
		return c.fallbackBreakdown()
	}

	consumption := vehicle.Consumption
	if consumption == 0 {
		consumption = defaultConsumptionFor(vehicle.FuelType)
	}

	pricePerUnit, err := c.prices.PricePerUnit(ctx, vehicle.FuelType)
	if err != nil {
		// Unrecognized fuel types are charged at the petrol rate.
		pricePerUnit, err = c.prices.PricePerUnit(ctx, FuelPetrol)
		if err != nil {
			return c.fallbackBreakdown()
		}
	}

	totalFuelConsumption := (consumption / 100) * distanceKm
	totalFuelCost := totalFuelConsumption * pricePerUnit

	// "+1" counts the driver sharing the cost; floor of 1 guards a zero or
	// negative seat count.
	totalPersons := totalSeats + 1
	if totalPersons < 1 {
		totalPersons = 1
	}
	baseFuelCost := totalFuelCost / float64(totalPersons)

	smallAmountSurcharge := 0.0
	if baseFuelCost < c.params.MinimumFare {
		smallAmountSurcharge = c.params.MinimumFare - baseFuelCost
	}

	subtotalBeforeFee := baseFuelCost + smallAmountSurcharge
	platformFee := subtotalBeforeFee * c.params.PlatformFeeRate
	insuranceSurcharge := c.params.InsuranceSurcharge
	subtotalBeforeTax := subtotalBeforeFee + platformFee + insuranceSurcharge
	tax := subtotalBeforeTax * c.params.TaxRate
	totalPrice := subtotalBeforeTax + tax

	if !isFinite(totalPrice) || totalPrice < 0 {
		return c.fallbackBreakdown()
	}

	return PriceBreakdown{
		BaseFuelCost:         round2(baseFuelCost),
		SmallAmountSurcharge: round2(smallAmountSurcharge),
		SubtotalBeforeFee:    round2(subtotalBeforeFee),
		PlatformFee:          round2(platformFee),
		InsuranceSurcharge:   round2(insuranceSurcharge),
		SubtotalBeforeTax:    round2(subtotalBeforeTax),
		Tax:                  round2(tax),
		TotalPrice:           round2(totalPrice),
		Outcome:              OutcomeComputed,
	}
}

// PricePerPerson is the "just the number" entry point used by listing cards
// and the booking modal. It never fails: every invalid-input path resolves to
// the flat fallback price.
func (c *FareCalculator) PricePerPerson(
	ctx context.Context,
	vehicle *Vehicle,
	distanceKm float64,
	totalSeats int,
) float64 {
	if vehicle == nil || distanceKm <= 0 || totalSeats <= 0 {
		return c.params.FallbackPrice
	}

	result := c.DetailedPricePerPerson(ctx, *vehicle, distanceKm, totalSeats)
	if math.IsNaN(result.TotalPrice) || result.TotalPrice < 0 {
		return c.params.FallbackPrice
	}

	return result.TotalPrice
}

// fallbackBreakdown prices a ride as if the raw fuel share were exactly the
// minimum fare. With production rates this is the historical safe tuple
// (3.00, 0, 3.00, 0.45, 1.50, 4.95, 0.40, 5.35).
func (c *FareCalculator) fallbackBreakdown() PriceBreakdown {
	subtotalBeforeFee := c.params.MinimumFare
	platformFee := subtotalBeforeFee * c.params.PlatformFeeRate
	subtotalBeforeTax := subtotalBeforeFee + platformFee + c.params.InsuranceSurcharge
	tax := subtotalBeforeTax * c.params.TaxRate

	return PriceBreakdown{
		BaseFuelCost:         round2(c.params.MinimumFare),
		SmallAmountSurcharge: 0,
		SubtotalBeforeFee:    round2(subtotalBeforeFee),
		PlatformFee:          round2(platformFee),
		InsuranceSurcharge:   round2(c.params.InsuranceSurcharge),
		SubtotalBeforeTax:    round2(subtotalBeforeTax),
		Tax:                  round2(tax),
		TotalPrice:           round2(subtotalBeforeTax + tax),
		Outcome:              OutcomeFallback,
	}
}

func defaultConsumptionFor(fuel FuelType) float64 {
	switch fuel {
	case FuelPetrol:
		return defaultPetrolConsumption
	case FuelDiesel:
		return defaultDieselConsumption
	case FuelElectric:
		return defaultElectricConsumption
	default:
		return defaultConsumption
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
