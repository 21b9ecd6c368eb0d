package http //nolint:testpackage // Handlers are exercised directly without the server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/pricing/internal/distance"
	"github.com/fahrwerk/pricing/internal/domain"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()

	table := domain.NewInMemoryFuelPriceTable()
	prices := map[domain.FuelType]float64{
		domain.FuelPetrol:   1.65,
		domain.FuelDiesel:   1.70,
		domain.FuelElectric: 0.20,
		domain.FuelHybrid:   1.65,
	}
	for fuel, price := range prices {
		require.NoError(t, table.RegisterPrice(ctx, fuel, price))
	}

	calculator := domain.NewFareCalculator(table, domain.DefaultFareParams())
	estimator := distance.NewChain(distance.NewStaticTable(), distance.NewRandomEstimator(nil))

	return NewHandler(domain.NewQuoteService(calculator, estimator), estimator)
}

func TestHandleQuote(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("prices a known route", func(t *testing.T) {
		body, err := json.Marshal(QuoteRequest{
			Vehicle:    VehiclePayload{FuelType: "petrol", Consumption: 6.0},
			From:       "Bern",
			To:         "Solothurn",
			TotalSeats: 3,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleQuote(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var quote domain.Quote
		require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))

		require.InDelta(t, 35, quote.DistanceKm, 0.0001)
		require.Equal(t, domain.SourceTable, quote.DistanceSource)
		require.InDelta(t, 5.35, quote.Breakdown.TotalPrice, 0.0001)
		require.InDelta(t, 5.35, quote.PricePerPerson, 0.0001)
		require.Equal(t, "CHF 5.35", quote.FormattedTotal)
		require.Equal(t, domain.OutcomeComputed, quote.Breakdown.Outcome)
	})

	t.Run("accepts an explicit distance", func(t *testing.T) {
		body, err := json.Marshal(QuoteRequest{
			Vehicle:    VehiclePayload{FuelType: "electric", Consumption: 18},
			DistanceKm: 200,
			TotalSeats: 4,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleQuote(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var quote domain.Quote
		require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
		require.Equal(t, domain.SourceRequest, quote.DistanceSource)
		require.InDelta(t, 5.35, quote.Breakdown.TotalPrice, 0.0001)
	})

	t.Run("rejects a missing vehicle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader([]byte(`{"total_seats":3}`)))
		w := httptest.NewRecorder()

		handler.HandleQuote(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/quote", bytes.NewReader([]byte(`{`)))
		w := httptest.NewRecorder()

		handler.HandleQuote(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects GET", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quote", nil)
		w := httptest.NewRecorder()

		handler.HandleQuote(w, req)

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleTripCost(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("estimates with style and load adjustments", func(t *testing.T) {
		body, err := json.Marshal(TripCostRequest{
			Vehicle:      VehiclePayload{FuelType: "petrol", Consumption: 6.0},
			DistanceKm:   100,
			DrivingStyle: "sport",
			Load:         "half",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/trip-cost", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleTripCost(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var estimate domain.TripCostEstimate
		require.NoError(t, json.NewDecoder(w.Body).Decode(&estimate))

		// 6.0 * 1.25 * 1.10 = 8.25 per 100km
		require.InDelta(t, 8.25, estimate.AdjustedConsumption, 0.0001)
		require.InDelta(t, 35, estimate.Breakdown.TotalAdjustment, 0.0001)
		require.Equal(t, "Benzin", estimate.FuelType)
	})

	t.Run("rejects an unknown driving style", func(t *testing.T) {
		body := []byte(`{"vehicle":{"fuel_type":"petrol","consumption":6},"distance_km":100,"driving_style":"turbo"}`)

		req := httptest.NewRequest(http.MethodPost, "/v1/trip-cost", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleTripCost(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a zero distance without a route", func(t *testing.T) {
		body := []byte(`{"vehicle":{"fuel_type":"petrol","consumption":6}}`)

		req := httptest.NewRequest(http.MethodPost, "/v1/trip-cost", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleTripCost(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDistance(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("resolves a known pair", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/distance?from=Bern&to=Solothurn", nil)
		w := httptest.NewRecorder()

		handler.HandleDistance(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var estimate domain.DistanceEstimate
		require.NoError(t, json.NewDecoder(w.Body).Decode(&estimate))
		require.InDelta(t, 35, estimate.Km, 0.0001)
		require.Equal(t, domain.SourceTable, estimate.Source)
	})

	t.Run("requires both query parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/distance?from=Bern", nil)
		w := httptest.NewRecorder()

		handler.HandleDistance(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	require.Equal(t, "ok", status["status"])
}
