package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
	"github.com/ndudarev/campus-lostfound/internal/services"
)

// ItemGetter defines the interface that the service must implement.
type ItemGetter interface {
	Get(ctx context.Context, id int64) (*models.ItemResponse, error)
}

// itemID extracts the {id} URL parameter. Non-numeric ids are treated the
// same as unknown ones.
func itemID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// NewGetItemHandler returns an HTTP handler for fetching a single item.
// @Summary Get one item
// @Description Returns the item with the given id, including derived display fields.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.ItemResponse "Item"
// @Failure 404 {object} handlers.ErrorResponse "Unknown item"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Resource not found")
				return
			}
			logger.Log.Errorw("failed to get item", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
