package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/services"
)

// ItemDeleter defines the interface that the service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteItemHandler returns an HTTP handler for deleting an item.
// @Summary Delete an item
// @Description Removes the item with the given id.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.MessageResponse "Item deleted successfully"
// @Failure 404 {object} handlers.ErrorResponse "Unknown item"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Resource not found")
				return
			}
			logger.Log.Errorw("failed to delete item", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
	}
}
