// Package order holds the order lifecycle core: the Order entity, the
// production state machine, the canonical in-memory repository, and the
// query and aggregation views the POS screens are built on.
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the customer-facing order status.
type Status string

const (
	StatusDalamProses Status = "dalam_proses"
	StatusSiapDiambil Status = "siap_diambil"
	StatusSelesai     Status = "selesai"
	// StatusTerlambat is never derived by this core; it only arrives as
	// externally-assigned seed data and must be preserved as-is.
	StatusTerlambat Status = "terlambat"
)

// Valid reports whether s is one of the defined customer statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDalamProses, StatusSiapDiambil, StatusSelesai, StatusTerlambat:
		return true
	}
	return false
}

// ProductionStatus is the internal production stage of an order.
type ProductionStatus string

const (
	ProductionAntrian     ProductionStatus = "antrian"
	ProductionDiproses    ProductionStatus = "diproses"
	ProductionSiapDiambil ProductionStatus = "siap_diambil"
	ProductionSelesai     ProductionStatus = "selesai"
)

// Valid reports whether p is one of the defined production stages.
func (p ProductionStatus) Valid() bool {
	switch p {
	case ProductionAntrian, ProductionDiproses, ProductionSiapDiambil, ProductionSelesai:
		return true
	}
	return false
}

// PaymentStatus tracks how much of the order has been paid for.
type PaymentStatus string

const (
	PaymentBelumBayar PaymentStatus = "belum_bayar"
	PaymentDP         PaymentStatus = "dp"
	PaymentLunas      PaymentStatus = "lunas"
)

// Valid reports whether p is one of the defined payment statuses.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentBelumBayar, PaymentDP, PaymentLunas:
		return true
	}
	return false
}

// Order is a laundry order. Identity is the sequential human-readable code
// assigned by the repository (e.g. "ORD-007"). TotalPrice and PaidAmount are
// whole rupiah; Weight is descriptive only, the price was fixed from the
// line items at creation.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string

	Items       int
	Weight      decimal.Decimal
	ServiceType string
	ItemDetails string
	Fragrance   string
	Notes       string

	TotalPrice    int64
	PaidAmount    int64
	PaymentStatus PaymentStatus

	Status           Status
	ProductionStatus ProductionStatus

	CreatedAt     time.Time
	EstimatedDate time.Time
	PickupTime    string
}
