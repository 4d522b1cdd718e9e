package order

import (
	"sort"
	"strings"
)

// Sentinel filter keys. The list screens use "semua" ("all") tabs whose
// meaning depends on the screen, see FilterByProductionTab.
const (
	FilterSemua = "semua"
)

// SortMode selects the ordering of a list screen.
type SortMode string

const (
	SortTerbaru     SortMode = "terbaru"      // newest first
	SortTerlama     SortMode = "terlama"      // oldest first
	SortHargaTinggi SortMode = "harga_tinggi" // highest price first
	SortHargaRendah SortMode = "harga_rendah" // lowest price first
)

// FilterByPayment keeps orders whose payment status matches key.
// The "semua" key passes everything.
func FilterByPayment(orders []Order, key string) []Order {
	if isSemua(key) {
		return orders
	}
	return keep(orders, func(o Order) bool {
		return o.PaymentStatus == PaymentStatus(key)
	})
}

// FilterByProductionTab keeps orders for one tab of the production screen.
// Despite the label, the "semua" tab does NOT mean every order: it shows the
// active queue, i.e. everything not yet at production selesai. Finished
// orders only appear under their own tab. An empty key means the screen has
// no production tabs and everything passes.
func FilterByProductionTab(orders []Order, key string) []Order {
	if key == "" {
		return orders
	}
	if isSemua(key) {
		return keep(orders, func(o Order) bool {
			return o.ProductionStatus != ProductionSelesai
		})
	}
	return keep(orders, func(o Order) bool {
		return o.ProductionStatus == ProductionStatus(key)
	})
}

// Search keeps orders whose id or customer name contains the query,
// case-insensitively. A blank query passes everything.
func Search(orders []Order, query string) []Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders
	}
	return keep(orders, func(o Order) bool {
		return strings.Contains(strings.ToLower(o.ID), q) ||
			strings.Contains(strings.ToLower(o.CustomerName), q)
	})
}

// FilterByService keeps orders with the exact service type label.
// The "Semua" sentinel bypasses the filter.
func FilterByService(orders []Order, serviceType string) []Order {
	if isSemua(serviceType) {
		return orders
	}
	return keep(orders, func(o Order) bool {
		return o.ServiceType == serviceType
	})
}

// FilterByStatus keeps orders with the exact customer status.
// The "semua" sentinel bypasses the filter.
func FilterByStatus(orders []Order, status string) []Order {
	if isSemua(status) {
		return orders
	}
	return keep(orders, func(o Order) bool {
		return o.Status == Status(status)
	})
}

// Sort returns a sorted copy. Sorting is stable: orders with equal keys keep
// their relative canonical order, and the input slice is never reordered.
// An unknown mode returns the copy untouched.
func Sort(orders []Order, mode SortMode) []Order {
	out := make([]Order, len(orders))
	copy(out, orders)

	switch mode {
	case SortTerbaru:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortTerlama:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortHargaTinggi:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalPrice > out[j].TotalPrice
		})
	case SortHargaRendah:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalPrice < out[j].TotalPrice
		})
	}
	return out
}

func isSemua(key string) bool {
	return key == "" || strings.EqualFold(key, FilterSemua)
}

func keep(orders []Order, pred func(Order) bool) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out
}
