package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/fahrwerk/pricing/internal/config"
	"github.com/fahrwerk/pricing/internal/distance"
	"github.com/fahrwerk/pricing/internal/domain"
	"github.com/fahrwerk/pricing/internal/http"
	"github.com/fahrwerk/pricing/internal/http/middleware"
	"github.com/fahrwerk/pricing/internal/observability"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability (invoked eagerly so the global logger exists before traffic)
	if err := container.Invoke(observability.InitLogger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Fuel price table, seeded from configuration
	if err := container.Provide(func(fuel *config.FuelPriceConfig) (domain.FuelPriceTable, error) {
		return seedFuelPrices(fuel)
	}); err != nil {
		log.Fatalf("Failed to provide fuel price table: %v", err)
	}

	// Fare calculator
	if err := container.Provide(func(prices domain.FuelPriceTable, fares *config.FareConfig) *domain.FareCalculator {
		return domain.NewFareCalculator(prices, domain.FareParams{
			MinimumFare:        fares.MinimumFare,
			PlatformFeeRate:    fares.PlatformFeeRate,
			InsuranceSurcharge: fares.InsuranceSurcharge,
			TaxRate:            fares.TaxRate,
			FallbackPrice:      fares.FallbackPrice,
		})
	}); err != nil {
		log.Fatalf("Failed to provide fare calculator: %v", err)
	}

	// Distance estimator chain: Maps (optional) -> static table -> random,
	// wrapped in a Redis cache when configured.
	if err := container.Provide(buildDistanceEstimator); err != nil {
		log.Fatalf("Failed to provide distance estimator: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(cors *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(cors)
	}); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func seedFuelPrices(fuel *config.FuelPriceConfig) (domain.FuelPriceTable, error) {
	ctx := context.Background()
	table := domain.NewInMemoryFuelPriceTable()

	prices := map[domain.FuelType]float64{
		domain.FuelPetrol:   fuel.Petrol,
		domain.FuelDiesel:   fuel.Diesel,
		domain.FuelElectric: fuel.Electric,
		domain.FuelHybrid:   fuel.Hybrid,
	}
	for fuelType, price := range prices {
		if err := table.RegisterPrice(ctx, fuelType, price); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func buildDistanceEstimator(mapsCfg *config.MapsConfig, redisCfg *config.RedisConfig) (domain.DistanceEstimator, error) {
	estimators := make([]domain.DistanceEstimator, 0, 3)

	if mapsCfg.APIKey != "" {
		mapsEstimator, err := distance.NewMapsEstimator(mapsCfg.APIKey, mapsCfg.Region)
		if err != nil {
			return nil, err
		}
		estimators = append(estimators, mapsEstimator)
	}

	estimators = append(estimators,
		distance.NewStaticTable(),
		distance.NewRandomEstimator(nil),
	)

	var estimator domain.DistanceEstimator = distance.NewChain(estimators...)

	if redisCfg.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisCfg.Addr})
		ttl := time.Duration(redisCfg.DistanceTTLSecs) * time.Second
		estimator = distance.NewRedisCache(client, estimator, ttl)
	}

	return estimator, nil
}
