package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bersihin/laundry-pos/internal/domain/order"
	"github.com/bersihin/laundry-pos/internal/domain/pricing"
)

// createOrderRequest is the new-order form payload. Weights arrive as the
// raw text the cashier typed; the pricing engine owns their interpretation.
type createOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Kiloan        []struct {
		ServiceID string `json:"serviceId"`
		Weight    string `json:"weight"`
	} `json:"kiloan"`
	Satuan []struct {
		ItemID string `json:"itemId"`
		Qty    int    `json:"qty"`
	} `json:"satuan"`
	Fragrance     string `json:"fragrance,omitempty"`
	Notes         string `json:"notes,omitempty"`
	EstimatedDate string `json:"estimatedDate,omitempty"`
	PickupTime    string `json:"pickupTime,omitempty"`
}

// orderResponse is the wire form of an Order.
type orderResponse struct {
	ID               string `json:"id"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	Items            int    `json:"items"`
	Weight           string `json:"weight"`
	ServiceType      string `json:"serviceType"`
	ItemDetails      string `json:"itemDetails"`
	Fragrance        string `json:"fragrance,omitempty"`
	Notes            string `json:"notes,omitempty"`
	TotalPrice       int64  `json:"totalPrice"`
	PaidAmount       int64  `json:"paidAmount"`
	PaymentStatus    string `json:"paymentStatus"`
	Status           string `json:"status"`
	ProductionStatus string `json:"productionStatus"`
	CreatedAt        string `json:"createdAt"`
	EstimatedDate    string `json:"estimatedDate,omitempty"`
	PickupTime       string `json:"pickupTime,omitempty"`
}

func toOrderResponse(o order.Order) orderResponse {
	resp := orderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		Items:            o.Items,
		Weight:           o.Weight.String(),
		ServiceType:      o.ServiceType,
		ItemDetails:      o.ItemDetails,
		Fragrance:        o.Fragrance,
		Notes:            o.Notes,
		TotalPrice:       o.TotalPrice,
		PaidAmount:       o.PaidAmount,
		PaymentStatus:    string(o.PaymentStatus),
		Status:           string(o.Status),
		ProductionStatus: string(o.ProductionStatus),
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
		PickupTime:       o.PickupTime,
	}
	if !o.EstimatedDate.IsZero() {
		resp.EstimatedDate = o.EstimatedDate.Format("2006-01-02")
	}
	return resp
}

// createOrder builds a pricing draft from the request, resolving catalog ids,
// and delegates to the order service.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "malformed request body"})
		return
	}

	draft := pricing.Draft{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Fragrance:     req.Fragrance,
		Notes:         req.Notes,
		PickupTime:    req.PickupTime,
	}
	if req.EstimatedDate != "" {
		d, err := time.Parse("2006-01-02", req.EstimatedDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "estimatedDate must be YYYY-MM-DD"})
			return
		}
		draft.EstimatedDate = d
	}

	for _, entry := range req.Kiloan {
		svc, err := h.catalog.ServiceByID(r.Context(), entry.ServiceID)
		if err != nil {
			writeError(w, err)
			return
		}
		draft.Kiloan = append(draft.Kiloan, pricing.KiloanEntry{Service: *svc, WeightText: entry.Weight})
	}
	for _, entry := range req.Satuan {
		item, err := h.catalog.ItemByID(r.Context(), entry.ItemID)
		if err != nil {
			writeError(w, err)
			return
		}
		draft.Satuan = append(draft.Satuan, pricing.SatuanEntry{Item: *item, Qty: entry.Qty})
	}

	created, err := h.orders.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(*created))
}

// listOrders applies the filter pipeline from query parameters.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := order.ListFilter{
		Payment:       q.Get("payment"),
		ProductionTab: q.Get("tab"),
		Query:         q.Get("q"),
		Service:       q.Get("service"),
		Status:        q.Get("status"),
	}
	mode := order.SortMode(q.Get("sort"))
	if mode == "" {
		mode = order.SortTerbaru
	}

	orders := h.orders.List(r.Context(), filter, mode)
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*o))
}

func (h *Handler) advanceProduction(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.AdvanceProduction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*o))
}

type recordPaymentRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "malformed request body"})
		return
	}

	o, err := h.orders.RecordPayment(r.Context(), chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*o))
}

func (h *Handler) suggestCustomers(w http.ResponseWriter, r *http.Request) {
	suggestions := h.orders.Suggest(r.Context(), r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []order.CustomerSuggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}
