// Package pricing computes order totals from the lines selected on the
// new-order form: kiloan services billed by weight and satuan items billed
// per unit. All monetary results are whole rupiah.
package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bersihin/laundry-pos/internal/domain/catalog"
)

// KiloanEntry is one weight-billed line on the form. WeightText holds the raw
// cashier input; it is parsed lazily so an unparsable weight stays inert
// instead of failing the draft.
type KiloanEntry struct {
	Service    catalog.Service
	WeightText string
}

// Weight returns the parsed weight of the entry in kilograms.
func (e KiloanEntry) Weight() decimal.Decimal {
	return ParseWeight(e.WeightText)
}

// SatuanEntry is one unit-priced line on the form.
type SatuanEntry struct {
	Item catalog.Item
	Qty  int
}

// Draft is the full state of the new-order form before submission.
type Draft struct {
	CustomerName  string
	CustomerPhone string
	Kiloan        []KiloanEntry
	Satuan        []SatuanEntry
	Fragrance     string
	Notes         string
	EstimatedDate time.Time
	PickupTime    string
}

// Line is one priced row of the confirmation summary.
type Line struct {
	Label    string
	Detail   string
	Subtotal int64
}

// KiloanSubtotal prices a weight-billed service: price per kg times weight,
// rounded half-up to the nearest whole rupiah.
func KiloanSubtotal(service catalog.Service, weight decimal.Decimal) int64 {
	return service.PricePerKg.Mul(weight).Round(0).IntPart()
}

// SatuanSubtotal prices a unit line.
func SatuanSubtotal(item catalog.Item, qty int) int64 {
	return item.Price * int64(qty)
}

// Total sums every priced line of the draft. Lines with zero or unparsable
// quantity contribute nothing; fragrance never affects the result.
func Total(d Draft) int64 {
	var total int64
	for _, e := range d.Kiloan {
		if w := e.Weight(); w.IsPositive() {
			total += KiloanSubtotal(e.Service, w)
		}
	}
	for _, e := range d.Satuan {
		if e.Qty > 0 {
			total += SatuanSubtotal(e.Item, e.Qty)
		}
	}
	return total
}

// Lines builds the confirmation summary: one row per priced line, in form
// order, kiloan before satuan. Inert lines are omitted.
func Lines(d Draft) []Line {
	var lines []Line
	for _, e := range d.Kiloan {
		w := e.Weight()
		if !w.IsPositive() {
			continue
		}
		lines = append(lines, Line{
			Label:    e.Service.Name,
			Detail:   fmt.Sprintf("%s kg", w.String()),
			Subtotal: KiloanSubtotal(e.Service, w),
		})
	}
	for _, e := range d.Satuan {
		if e.Qty <= 0 {
			continue
		}
		lines = append(lines, Line{
			Label:    e.Item.Name,
			Detail:   fmt.Sprintf("x%d", e.Qty),
			Subtotal: SatuanSubtotal(e.Item, e.Qty),
		})
	}
	return lines
}

// CanSubmit reports whether the draft is complete enough to become an order:
// a non-blank customer name and at least one priced line. Either alone is
// not sufficient.
func CanSubmit(d Draft) bool {
	if strings.TrimSpace(d.CustomerName) == "" {
		return false
	}
	for _, e := range d.Kiloan {
		if e.Weight().IsPositive() {
			return true
		}
	}
	for _, e := range d.Satuan {
		if e.Qty > 0 {
			return true
		}
	}
	return false
}

// ItemCount counts the discrete pieces in the draft: satuan quantities plus
// one per priced kiloan line.
func ItemCount(d Draft) int {
	count := 0
	for _, e := range d.Kiloan {
		if e.Weight().IsPositive() {
			count++
		}
	}
	for _, e := range d.Satuan {
		if e.Qty > 0 {
			count += e.Qty
		}
	}
	return count
}

// TotalWeight sums the parsed weights of all kiloan lines in kilograms.
func TotalWeight(d Draft) decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Kiloan {
		total = total.Add(e.Weight())
	}
	return total
}

// ServiceLabel assembles the display label for the order from the names of
// the priced lines, kiloan services first.
func ServiceLabel(d Draft) string {
	var names []string
	for _, e := range d.Kiloan {
		if e.Weight().IsPositive() {
			names = append(names, e.Service.Name)
		}
	}
	for _, e := range d.Satuan {
		if e.Qty > 0 {
			names = append(names, e.Item.Name)
		}
	}
	return strings.Join(names, ", ")
}

// DetailText composes the free-text item description stored on the order.
func DetailText(d Draft) string {
	var parts []string
	for _, l := range Lines(d) {
		parts = append(parts, l.Label+" "+l.Detail)
	}
	return strings.Join(parts, "; ")
}
