package domain

// FuelType identifies how a vehicle is powered. Consumption semantics
// depend on it: liters/100km for combustion engines, kWh/100km for electric.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Unit returns the display unit for consumption figures.
func (f FuelType) Unit() string {
	if f == FuelElectric {
		return "kWh"
	}
	return "L"
}

// Label returns the German-language display label used by the app.
func (f FuelType) Label() string {
	switch f {
	case FuelPetrol:
		return "Benzin"
	case FuelDiesel:
		return "Diesel"
	case FuelElectric:
		return "Strom"
	case FuelHybrid:
		return "Hybrid"
	default:
		return string(f)
	}
}

// DrivingStyle adjusts consumption for driving behavior.
type DrivingStyle string

const (
	StyleEco    DrivingStyle = "eco"
	StyleNormal DrivingStyle = "normal"
	StyleSport  DrivingStyle = "sport"
)

// Load adjusts consumption for vehicle payload.
type Load string

const (
	LoadEmpty Load = "empty"
	LoadHalf  Load = "half"
	LoadFull  Load = "full"
)

// Vehicle carries the two attributes pricing cares about. The surrounding
// marketplace knows brand/model/year too; none of that affects price.
type Vehicle struct {
	FuelType    FuelType `json:"fuel_type"`
	Consumption float64  `json:"consumption,omitempty"` // per 100km; 0 means unknown
}

// QuoteOutcome tags a breakdown as computed from real inputs or as the
// fixed safety fallback.
type QuoteOutcome string

const (
	OutcomeComputed QuoteOutcome = "computed"
	OutcomeFallback QuoteOutcome = "fallback"
)

// PriceBreakdown is the itemized consumer-facing per-person price.
// Every amount is rounded to 2 decimals independently; amounts are CHF.
type PriceBreakdown struct {
	BaseFuelCost         float64      `json:"base_fuel_cost"`
	SmallAmountSurcharge float64      `json:"small_amount_surcharge"`
	SubtotalBeforeFee    float64      `json:"subtotal_before_fee"`
	PlatformFee          float64      `json:"platform_fee"`
	InsuranceSurcharge   float64      `json:"insurance_surcharge"`
	SubtotalBeforeTax    float64      `json:"subtotal_before_tax"`
	Tax                  float64      `json:"tax"`
	TotalPrice           float64      `json:"total_price"`
	Outcome              QuoteOutcome `json:"outcome"`
}

// AdjustmentBreakdown reports the percentage effect of each consumption
// adjustment applied by the trip cost estimator.
type AdjustmentBreakdown struct {
	DrivingStyleAdjustment float64 `json:"driving_style_adjustment"`
	LoadAdjustment         float64 `json:"load_adjustment"`
	TotalAdjustment        float64 `json:"total_adjustment"`
}

// TripCostEstimate is the driver-facing cost estimate. Values are not
// rounded; callers round for display.
type TripCostEstimate struct {
	TotalFuelConsumption float64             `json:"total_fuel_consumption"` // L or kWh
	TotalFuelCost        float64             `json:"total_fuel_cost"`        // CHF
	CostPerKm            float64             `json:"cost_per_km"`            // CHF
	CostPerPerson        float64             `json:"cost_per_person"`        // CHF
	BaseConsumption      float64             `json:"base_consumption"`       // per 100km
	AdjustedConsumption  float64             `json:"adjusted_consumption"`   // per 100km
	FuelType             string              `json:"fuel_type"`              // display label
	Unit                 string              `json:"unit"`                   // "L" or "kWh"
	Breakdown            AdjustmentBreakdown `json:"breakdown"`
}
