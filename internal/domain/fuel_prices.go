package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// FuelPriceTable maintains per-unit fuel prices. It is the single source of
// truth for fuel pricing; calculators must consult it instead of hard-coding
// prices.
type FuelPriceTable interface {
	// PricePerUnit returns the CHF price per liter (or kWh) for a fuel type.
	PricePerUnit(ctx context.Context, fuel FuelType) (float64, error)

	// RegisterPrice sets the price for a fuel type.
	RegisterPrice(ctx context.Context, fuel FuelType, pricePerUnit float64) error
}

// InMemoryFuelPriceTable stores fuel prices in memory.
type InMemoryFuelPriceTable struct {
	mu     sync.RWMutex
	prices map[FuelType]float64
}

// NewInMemoryFuelPriceTable creates an empty fuel price table.
func NewInMemoryFuelPriceTable() *InMemoryFuelPriceTable {
	return &InMemoryFuelPriceTable{
		mu:     sync.RWMutex{},
		prices: make(map[FuelType]float64),
	}
}

// PricePerUnit retrieves the price for a fuel type.
func (t *InMemoryFuelPriceTable) PricePerUnit(_ context.Context, fuel FuelType) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	price, exists := t.prices[fuel]
	if !exists {
		return 0, fmt.Errorf("no price registered for fuel type: %s", fuel)
	}

	return price, nil
}

// RegisterPrice sets the price for a fuel type.
func (t *InMemoryFuelPriceTable) RegisterPrice(_ context.Context, fuel FuelType, pricePerUnit float64) error {
	if fuel == "" {
		return errors.New("fuel type cannot be empty")
	}
	if pricePerUnit <= 0 {
		return fmt.Errorf("price per unit must be positive, got %v", pricePerUnit)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.prices[fuel] = pricePerUnit
	return nil
}
