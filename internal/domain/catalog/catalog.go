// Package catalog defines the laundry service catalog: weight-billed (kiloan)
// services, unit-priced (satuan) items, and the cosmetic fragrance options
// offered on the new-order form.
package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// Service is a weight-billed laundry service priced per kilogram.
type Service struct {
	ID         string
	Name       string
	PricePerKg decimal.Decimal
}

// Item is a discrete laundry item with a fixed unit price in whole rupiah.
type Item struct {
	ID    string
	Name  string
	Price int64
}

// Fragrance is a scent option. It never affects pricing.
type Fragrance struct {
	ID   string
	Name string
}

// Repository defines read operations over the catalog.
type Repository interface {
	Services(ctx context.Context) ([]Service, error)
	Items(ctx context.Context) ([]Item, error)
	Fragrances(ctx context.Context) ([]Fragrance, error)
	ServiceByID(ctx context.Context, id string) (*Service, error)
	ItemByID(ctx context.Context, id string) (*Item, error)
}
