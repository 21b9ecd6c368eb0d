package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// Config represents the pricing service configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Fares  FareConfig
	Fuel   FuelPriceConfig
	Maps   MapsConfig
	Redis  RedisConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// FareConfig contains the marketplace pricing rates. Defaults are the current
// production values; override via env when rates change.
type FareConfig struct {
	MinimumFare        float64 `env:"FARE_MINIMUM"             envDefault:"3.00"`
	PlatformFeeRate    float64 `env:"FARE_PLATFORM_FEE_RATE"   envDefault:"0.15"`
	InsuranceSurcharge float64 `env:"FARE_INSURANCE_SURCHARGE" envDefault:"1.50"`
	TaxRate            float64 `env:"FARE_TAX_RATE"            envDefault:"0.081"`
	FallbackPrice      float64 `env:"FARE_FALLBACK_PRICE"      envDefault:"5.00"`
}

// FuelPriceConfig seeds the fuel price table at startup (CHF per liter,
// electric per kWh). Hybrid defaults to the petrol price.
type FuelPriceConfig struct {
	Petrol   float64 `env:"FUEL_PRICE_PETROL"   envDefault:"1.65"`
	Diesel   float64 `env:"FUEL_PRICE_DIESEL"   envDefault:"1.70"`
	Electric float64 `env:"FUEL_PRICE_ELECTRIC" envDefault:"0.20"`
	Hybrid   float64 `env:"FUEL_PRICE_HYBRID"   envDefault:"1.65"`
}

// MapsConfig contains Google Maps settings. An empty API key disables the
// live road-distance provider.
type MapsConfig struct {
	APIKey string `env:"MAPS_API_KEY"`
	Region string `env:"MAPS_REGION" envDefault:"CH"`
}

// RedisConfig contains distance cache settings. An empty address disables
// caching.
type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR"`
	DistanceTTLSecs int    `env:"DISTANCE_CACHE_TTL" envDefault:"3600"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*FareConfig
	*FuelPriceConfig
	*MapsConfig
	*RedisConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Fares,
		&cfg.Fuel,
		&cfg.Maps,
		&cfg.Redis,
	}
}
