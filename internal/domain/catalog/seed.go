package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

var _ Repository = (*StaticRepository)(nil)

// StaticRepository serves the built-in catalog. The shop's price list changes
// rarely enough that it ships with the binary; a database-backed catalog can
// replace this behind the same interface.
type StaticRepository struct {
	services   []Service
	items      []Item
	fragrances []Fragrance
}

// NewStaticRepository returns a Repository backed by the default price list.
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		services: []Service{
			{ID: "cuci-reguler", Name: "Cuci Reguler", PricePerKg: decimal.NewFromInt(7000)},
			{ID: "cuci-express", Name: "Cuci Express", PricePerKg: decimal.NewFromInt(10000)},
			{ID: "cuci-setrika", Name: "Cuci Setrika", PricePerKg: decimal.NewFromInt(9000)},
			{ID: "setrika-saja", Name: "Setrika Saja", PricePerKg: decimal.NewFromInt(5000)},
		},
		items: []Item{
			{ID: "jaket", Name: "Jaket", Price: 15000},
			{ID: "bed-cover", Name: "Bed Cover", Price: 25000},
			{ID: "selimut", Name: "Selimut", Price: 20000},
			{ID: "sepatu", Name: "Sepatu", Price: 30000},
			{ID: "tas", Name: "Tas", Price: 25000},
		},
		fragrances: []Fragrance{
			{ID: "lavender", Name: "Lavender"},
			{ID: "ocean", Name: "Ocean Fresh"},
			{ID: "vanilla", Name: "Vanilla"},
			{ID: "rose", Name: "Rose"},
			{ID: "none", Name: "Tanpa Pewangi"},
		},
	}
}

// Services lists the kiloan services in display order.
func (r *StaticRepository) Services(_ context.Context) ([]Service, error) {
	out := make([]Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

// Items lists the satuan items in display order.
func (r *StaticRepository) Items(_ context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Fragrances lists the fragrance options.
func (r *StaticRepository) Fragrances(_ context.Context) ([]Fragrance, error) {
	out := make([]Fragrance, len(r.fragrances))
	copy(out, r.fragrances)
	return out, nil
}

// ServiceByID returns the kiloan service with the given id or ErrNotFound.
func (r *StaticRepository) ServiceByID(_ context.Context, id string) (*Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// ItemByID returns the satuan item with the given id or ErrNotFound.
func (r *StaticRepository) ItemByID(_ context.Context, id string) (*Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNotFound
}
