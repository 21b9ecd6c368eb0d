package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/fahrwerk/pricing/internal/distance"
	"github.com/fahrwerk/pricing/internal/domain"
	"github.com/fahrwerk/pricing/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	quotes    *domain.QuoteService
	distances domain.DistanceEstimator
	validate  *validator.Validate
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService, distances domain.DistanceEstimator) *Handler {
	return &Handler{
		quotes:    quotes,
		distances: distances,
		validate:  validator.New(),
	}
}

// VehiclePayload is the wire form of a vehicle for pricing purposes.
// Unrecognized fuel types are accepted and priced at the petrol rate, so the
// field is only checked for presence.
type VehiclePayload struct {
	FuelType    string  `json:"fuel_type"             validate:"required"`
	Consumption float64 `json:"consumption,omitempty" validate:"gte=0"`
}

// QuoteRequest is the wire form of a consumer price request.
type QuoteRequest struct {
	Vehicle    VehiclePayload `json:"vehicle"               validate:"required"`
	From       string         `json:"from,omitempty"`
	To         string         `json:"to,omitempty"`
	DistanceKm float64        `json:"distance_km,omitempty" validate:"gte=0"`
	TotalSeats int            `json:"total_seats"           validate:"gte=0"`
}

// TripCostRequest is the wire form of a driver-side estimate request.
type TripCostRequest struct {
	Vehicle      VehiclePayload `json:"vehicle"                 validate:"required"`
	From         string         `json:"from,omitempty"`
	To           string         `json:"to,omitempty"`
	DistanceKm   float64        `json:"distance_km,omitempty"   validate:"gte=0"`
	DrivingStyle string         `json:"driving_style,omitempty" validate:"omitempty,oneof=eco normal sport"`
	Load         string         `json:"load,omitempty"          validate:"omitempty,oneof=empty half full"`
	FuelPrice    float64        `json:"fuel_price,omitempty"    validate:"gte=0"`
}

// HandleQuote serves the consumer-facing price breakdown.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithFuelType(ctx, req.Vehicle.FuelType)
	if req.From != "" && req.To != "" {
		ctx = observability.WithRoute(ctx, distance.RouteKey(req.From, req.To))
	}

	logger := observability.FromContext(ctx)
	logger.Info("quote request received",
		observability.Float64("distance_km", req.DistanceKm),
		observability.Int("total_seats", req.TotalSeats),
	)

	quote, err := h.quotes.Quote(ctx, &domain.QuoteRequest{
		Vehicle: domain.Vehicle{
			FuelType:    domain.FuelType(req.Vehicle.FuelType),
			Consumption: req.Vehicle.Consumption,
		},
		From:       req.From,
		To:         req.To,
		DistanceKm: req.DistanceKm,
		TotalSeats: req.TotalSeats,
	})
	if err != nil {
		logger.Error("quote failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, quote)
}

// HandleTripCost serves the driver-facing cost estimate.
func (h *Handler) HandleTripCost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req TripCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithFuelType(ctx, req.Vehicle.FuelType)
	if req.From != "" && req.To != "" {
		ctx = observability.WithRoute(ctx, distance.RouteKey(req.From, req.To))
	}

	estimate, err := h.quotes.EstimateTripCost(ctx, &domain.TripCostRequest{
		Params: domain.TripCostParams{
			Vehicle: domain.Vehicle{
				FuelType:    domain.FuelType(req.Vehicle.FuelType),
				Consumption: req.Vehicle.Consumption,
			},
			DistanceKm:   req.DistanceKm,
			DrivingStyle: domain.DrivingStyle(req.DrivingStyle),
			Load:         domain.Load(req.Load),
			FuelPrice:    req.FuelPrice,
		},
		From: req.From,
		To:   req.To,
	})
	if err != nil {
		observability.FromContext(ctx).Error("trip cost estimate failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, estimate)
}

// HandleDistance serves GET /v1/distance?from=&to=.
func (h *Handler) HandleDistance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "from and to query parameters are required", http.StatusBadRequest)
		return
	}

	ctx = observability.WithRoute(ctx, distance.RouteKey(from, to))

	estimate, err := h.distances.EstimateDistance(ctx, from, to)
	if err != nil {
		observability.FromContext(ctx).Error("distance estimation failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, estimate)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
