package distance

import (
	"context"
	"errors"

	"github.com/fahrwerk/pricing/internal/domain"
	"github.com/fahrwerk/pricing/internal/observability"
)

// Chain tries estimators in order and returns the first answer. The service
// wires it as maps (optional) -> static table -> random, so it only fails
// when constructed empty.
type Chain struct {
	estimators []domain.DistanceEstimator
}

// NewChain creates a fallback chain over the given estimators.
func NewChain(estimators ...domain.DistanceEstimator) *Chain {
	return &Chain{estimators: estimators}
}

// EstimateDistance walks the chain until an estimator answers.
func (c *Chain) EstimateDistance(ctx context.Context, from, to string) (domain.DistanceEstimate, error) {
	if len(c.estimators) == 0 {
		return domain.DistanceEstimate{}, errors.New("no distance estimators configured")
	}

	logger := observability.FromContext(ctx)

	var lastErr error
	for _, estimator := range c.estimators {
		estimate, err := estimator.EstimateDistance(ctx, from, to)
		if err == nil {
			return estimate, nil
		}

		if !errors.Is(err, domain.ErrUnknownRoute) {
			logger.Warn("distance estimator failed, trying next",
				observability.String("route", RouteKey(from, to)),
				observability.Error(err))
		}
		lastErr = err
	}

	return domain.DistanceEstimate{}, lastErr
}
