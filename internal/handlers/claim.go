package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
	"github.com/ndudarev/campus-lostfound/internal/services"
)

// ItemClaimer defines the interface that the service must implement.
type ItemClaimer interface {
	Claim(ctx context.Context, id int64) (*models.ItemResponse, error)
}

// ClaimResponse represents a successful claim response.
// swagger:model ClaimResponse
type ClaimResponse struct {
	// Confirmation message
	// default: Item marked as returned
	Message string `json:"message"`

	// The updated item
	Item *models.ItemResponse `json:"item"`
}

// NewClaimItemHandler returns an HTTP handler for marking an item as returned.
// @Summary Claim an item
// @Description Marks the item as returned to its owner, regardless of its current status.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.ClaimResponse "Item marked as returned"
// @Failure 404 {object} handlers.ErrorResponse "Unknown item"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/items/{id}/claim [post]
func NewClaimItemHandler(svc ItemClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}

		item, err := svc.Claim(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrItemNotFound) {
				writeError(w, http.StatusNotFound, "Resource not found")
				return
			}
			logger.Log.Errorw("failed to claim item", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ClaimResponse{
			Message: "Item marked as returned",
			Item:    item,
		})
	}
}
