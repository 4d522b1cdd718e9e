package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/jx"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

// exportOrders streams the full snapshot as a JSON array. The export is the
// backup/hand-off feed for the shop owner, so it bypasses the list filters
// and always reflects canonical order.
func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.All(r.Context())

	var e jx.Encoder
	e.Arr(func(e *jx.Encoder) {
		for _, o := range orders {
			encodeOrder(e, o)
		}
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.json"`)
	_, _ = w.Write(e.Bytes())
}

func encodeOrder(e *jx.Encoder, o order.Order) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(o.ID) })
		e.Field("customerName", func(e *jx.Encoder) { e.Str(o.CustomerName) })
		e.Field("customerPhone", func(e *jx.Encoder) { e.Str(o.CustomerPhone) })
		e.Field("items", func(e *jx.Encoder) { e.Int(o.Items) })
		e.Field("weight", func(e *jx.Encoder) { e.Str(o.Weight.String()) })
		e.Field("serviceType", func(e *jx.Encoder) { e.Str(o.ServiceType) })
		e.Field("itemDetails", func(e *jx.Encoder) { e.Str(o.ItemDetails) })
		e.Field("fragrance", func(e *jx.Encoder) { e.Str(o.Fragrance) })
		e.Field("notes", func(e *jx.Encoder) { e.Str(o.Notes) })
		e.Field("totalPrice", func(e *jx.Encoder) { e.Int64(o.TotalPrice) })
		e.Field("paidAmount", func(e *jx.Encoder) { e.Int64(o.PaidAmount) })
		e.Field("paymentStatus", func(e *jx.Encoder) { e.Str(string(o.PaymentStatus)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(o.Status)) })
		e.Field("productionStatus", func(e *jx.Encoder) { e.Str(string(o.ProductionStatus)) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(o.CreatedAt.Format(time.RFC3339)) })
		e.Field("estimatedDate", func(e *jx.Encoder) { e.Str(o.EstimatedDate.Format("2006-01-02")) })
		e.Field("pickupTime", func(e *jx.Encoder) { e.Str(o.PickupTime) })
	})
}
