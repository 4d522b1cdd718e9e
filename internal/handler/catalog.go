package handler

import (
	"net/http"
)

type catalogService struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PricePerKg int64  `json:"pricePerKg"`
}

type catalogItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type catalogFragrance struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type catalogResponse struct {
	Services   []catalogService   `json:"services"`
	Items      []catalogItem      `json:"items"`
	Fragrances []catalogFragrance `json:"fragrances"`
}

// getCatalog returns everything the new-order form needs to render.
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.Services(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.catalog.Items(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	fragrances, err := h.catalog.Fragrances(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := catalogResponse{
		Services:   make([]catalogService, len(services)),
		Items:      make([]catalogItem, len(items)),
		Fragrances: make([]catalogFragrance, len(fragrances)),
	}
	for i, s := range services {
		resp.Services[i] = catalogService{ID: s.ID, Name: s.Name, PricePerKg: s.PricePerKg.IntPart()}
	}
	for i, it := range items {
		resp.Items[i] = catalogItem{ID: it.ID, Name: it.Name, Price: it.Price}
	}
	for i, f := range fragrances {
		resp.Fragrances[i] = catalogFragrance{ID: f.ID, Name: f.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}
