package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
	"github.com/ndudarev/campus-lostfound/internal/services"
)

// ItemUpdater defines the interface that the service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, id int64, status, description, location *string) (*models.ItemResponse, error)
}

// UpdateItemRequest represents the JSON body for updating an item. Only the
// fields present in the body are applied; everything else is ignored.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	// New lifecycle status
	// default: returned
	Status *string `json:"status"`

	// New description
	Description *string `json:"description"`

	// New location
	Location *string `json:"location"`
}

// NewUpdateItemHandler returns an HTTP handler for updating an item.
// @Summary Update an item
// @Description Applies the provided status, description and location fields and refreshes updated_at. Unknown statuses are rejected.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body handlers.UpdateItemRequest true "Fields to update"
// @Success 200 {object} models.ItemResponse "Updated item"
// @Failure 400 {object} handlers.ErrorResponse "Unknown status"
// @Failure 404 {object} handlers.ErrorResponse "Unknown item"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/items/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update request", "id", id, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Update(r.Context(), id, req.Status, req.Description, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrItemNotFound):
				writeError(w, http.StatusNotFound, "Resource not found")
			default:
				logger.Log.Errorw("failed to update item", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}
