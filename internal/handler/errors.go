package handler

import (
	"net/http"

	"github.com/go-faster/errors"

	"github.com/bersihin/laundry-pos/internal/domain/catalog"
	"github.com/bersihin/laundry-pos/internal/domain/order"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to an HTTP status and writes the body.
// Validation failures are 400 so the form can re-render inline; unknown ids
// are 404; advancing a finished order is 409; anything else is a 500 with
// the detail kept out of the response.
func writeError(w http.ResponseWriter, err error) {
	var verr *order.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: verr.Reason})
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: "unknown catalog entry"})
	case errors.Is(err, order.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Code: http.StatusNotFound, Message: "order not found"})
	case errors.Is(err, order.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Code: http.StatusConflict, Message: "order is already finished"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: http.StatusInternalServerError, Message: "internal error"})
	}
}
