package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/pricing/internal/domain"
)

func TestInMemoryFuelPriceTable(t *testing.T) {
	ctx := context.Background()

	t.Run("register and retrieve price", func(t *testing.T) {
		table := domain.NewInMemoryFuelPriceTable()

		err := table.RegisterPrice(ctx, domain.FuelPetrol, 1.65)
		require.NoError(t, err)

		price, err := table.PricePerUnit(ctx, domain.FuelPetrol)
		require.NoError(t, err)
		require.InDelta(t, 1.65, price, 0.0001)
	})

	t.Run("unregistered fuel type returns error", func(t *testing.T) {
		table := domain.NewInMemoryFuelPriceTable()

		_, err := table.PricePerUnit(ctx, domain.FuelDiesel)
		require.Error(t, err)
	})

	t.Run("register with empty fuel type returns error", func(t *testing.T) {
		table := domain.NewInMemoryFuelPriceTable()

		err := table.RegisterPrice(ctx, "", 1.65)
		require.Error(t, err)
	})

	t.Run("register with non-positive price returns error", func(t *testing.T) {
		table := domain.NewInMemoryFuelPriceTable()

		require.Error(t, table.RegisterPrice(ctx, domain.FuelPetrol, 0))
		require.Error(t, table.RegisterPrice(ctx, domain.FuelPetrol, -1.65))
	})

	t.Run("overwrite existing price", func(t *testing.T) {
		table := domain.NewInMemoryFuelPriceTable()

		require.NoError(t, table.RegisterPrice(ctx, domain.FuelElectric, 0.20))
		require.NoError(t, table.RegisterPrice(ctx, domain.FuelElectric, 0.25))

		price, err := table.PricePerUnit(ctx, domain.FuelElectric)
		require.NoError(t, err)
		require.InDelta(t, 0.25, price, 0.0001)
	})
}

func TestFuelTypeLabels(t *testing.T) {
	require.Equal(t, "Benzin", domain.FuelPetrol.Label())
	require.Equal(t, "Diesel", domain.FuelDiesel.Label())
	require.Equal(t, "Strom", domain.FuelElectric.Label())
	require.Equal(t, "Hybrid", domain.FuelHybrid.Label())
	require.Equal(t, "lpg", domain.FuelType("lpg").Label())

	require.Equal(t, "kWh", domain.FuelElectric.Unit())
	require.Equal(t, "L", domain.FuelPetrol.Unit())
	require.Equal(t, "L", domain.FuelHybrid.Unit())
}
