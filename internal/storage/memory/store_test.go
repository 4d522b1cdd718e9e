package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

func TestStore_LoadBeforeSave(t *testing.T) {
	s := NewStore()

	got, err := s.LoadOrders(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got, "an empty store must signal 'no snapshot' so callers fall back to seed")
}

func TestStore_RoundTrip(t *testing.T) {
	s := NewStore()
	orders := []order.Order{
		{
			ID:               "ORD-001",
			CustomerName:     "Budi Santoso",
			CustomerPhone:    "0812-1111",
			Items:            2,
			Weight:           decimal.RequireFromString("2.5"),
			ServiceType:      "Cuci Reguler, Jaket",
			ItemDetails:      "Cuci Reguler 2.5 kg; Jaket x1",
			Fragrance:        "lavender",
			TotalPrice:       32500,
			PaidAmount:       10000,
			PaymentStatus:    order.PaymentDP,
			Status:           order.StatusDalamProses,
			ProductionStatus: order.ProductionDiproses,
			CreatedAt:        time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC),
			EstimatedDate:    time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC),
			PickupTime:       "17:00",
		},
		{
			ID:               "ORD-002",
			CustomerName:     "Siti Aminah",
			PaymentStatus:    order.PaymentBelumBayar,
			Status:           order.StatusTerlambat,
			ProductionStatus: order.ProductionAntrian,
			CreatedAt:        time.Date(2025, 8, 21, 14, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, s.SaveOrders(context.Background(), orders))

	got, err := s.LoadOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, orders, got, "save-then-load must be field-for-field identical")
}

func TestStore_SaveTakesACopy(t *testing.T) {
	s := NewStore()
	orders := []order.Order{{ID: "ORD-001", CustomerName: "Budi"}}
	require.NoError(t, s.SaveOrders(context.Background(), orders))

	orders[0].CustomerName = "mutated"

	got, err := s.LoadOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Budi", got[0].CustomerName)
}
