package handler

import (
	"net/http"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

// dashboardResponse carries the derivable dashboard aggregates. Revenue and
// expense figures are a separate reporting feed, not computed from orders.
type dashboardResponse struct {
	Counts       order.ProductionCounts     `json:"counts"`
	Distribution []order.DistributionBucket `json:"distribution"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	resp := dashboardResponse{
		Counts:       h.orders.Counts(r.Context()),
		Distribution: h.orders.Distribution(r.Context()),
	}
	if resp.Distribution == nil {
		resp.Distribution = []order.DistributionBucket{}
	}
	writeJSON(w, http.StatusOK, resp)
}
