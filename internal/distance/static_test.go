package distance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fahrwerk/pricing/internal/distance"
	"github.com/fahrwerk/pricing/internal/domain"
)

func TestStaticTable(t *testing.T) {
	ctx := context.Background()
	table := distance.NewStaticTable()

	t.Run("known pair resolves in both directions", func(t *testing.T) {
		forward, err := table.EstimateDistance(ctx, "Bern", "Solothurn")
		require.NoError(t, err)
		require.InDelta(t, 35, forward.Km, 0.0001)
		require.Equal(t, domain.SourceTable, forward.Source)

		backward, err := table.EstimateDistance(ctx, "Solothurn", "Bern")
		require.NoError(t, err)
		require.InDelta(t, 35, backward.Km, 0.0001)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		estimate, err := table.EstimateDistance(ctx, "ZÜRICH", "basel")
		require.NoError(t, err)
		require.InDelta(t, 85, estimate.Km, 0.0001)
	})

	t.Run("unknown pair returns ErrUnknownRoute", func(t *testing.T) {
		_, err := table.EstimateDistance(ctx, "Bern", "Paris")
		require.ErrorIs(t, err, domain.ErrUnknownRoute)
	})
}

func TestRouteKey(t *testing.T) {
	require.Equal(t, "bern-solothurn", distance.RouteKey("Bern", "Solothurn"))
	require.Equal(t, "zürich-basel", distance.RouteKey("ZÜRICH", "Basel"))
}
