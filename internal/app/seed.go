package app

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

// SeedOrders is the starter collection used when the store has no snapshot
// yet, so a fresh install shows populated screens. It includes one
// externally-flagged late order, which the core preserves but never derives.
func SeedOrders() []order.Order {
	base := time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC)
	return []order.Order{
		{
			ID:            "ORD-001",
			CustomerName:  "Budi Santoso",
			CustomerPhone: "0812-3456-1111",
			Items:         1, Weight: decimal.RequireFromString("2.5"),
			ServiceType: "Cuci Reguler",
			ItemDetails: "Cuci Reguler 2.5 kg",
			TotalPrice:  17500, PaidAmount: 17500, PaymentStatus: order.PaymentLunas,
			Status: order.StatusSiapDiambil, ProductionStatus: order.ProductionSelesai,
			CreatedAt:     base,
			EstimatedDate: base.AddDate(0, 0, 2),
			PickupTime:    "17:00",
		},
		{
			ID:            "ORD-002",
			CustomerName:  "Siti Aminah",
			CustomerPhone: "0813-2222-0002",
			Items:         3, Weight: decimal.RequireFromString("4"),
			ServiceType: "Cuci Express, Jaket",
			ItemDetails: "Cuci Express 4 kg; Jaket x2",
			Fragrance:   "lavender",
			TotalPrice:  70000, PaidAmount: 20000, PaymentStatus: order.PaymentDP,
			Status: order.StatusDalamProses, ProductionStatus: order.ProductionDiproses,
			CreatedAt:     base.AddDate(0, 0, 1),
			EstimatedDate: base.AddDate(0, 0, 2),
			PickupTime:    "10:00",
		},
		{
			ID:            "ORD-003",
			CustomerName:  "Dewi Lestari",
			CustomerPhone: "0899-3333-0003",
			Items:         1, Weight: decimal.RequireFromString("3"),
			ServiceType: "Setrika Saja",
			ItemDetails: "Setrika Saja 3 kg",
			TotalPrice:  15000, PaymentStatus: order.PaymentBelumBayar,
			Status: order.StatusTerlambat, ProductionStatus: order.ProductionSiapDiambil,
			CreatedAt:     base.AddDate(0, 0, -3),
			EstimatedDate: base.AddDate(0, 0, -1),
			PickupTime:    "15:00",
		},
		{
			ID:            "ORD-004",
			CustomerName:  "Joko Widodo",
			CustomerPhone: "0821-4444-0004",
			Items:         2, Weight: decimal.Zero,
			ServiceType: "Bed Cover, Sepatu",
			ItemDetails: "Bed Cover x1; Sepatu x1",
			TotalPrice:  55000, PaymentStatus: order.PaymentBelumBayar,
			Status: order.StatusDalamProses, ProductionStatus: order.ProductionAntrian,
			CreatedAt:     base.AddDate(0, 0, 2),
			EstimatedDate: base.AddDate(0, 0, 4),
			PickupTime:    "13:00",
		},
	}
}
