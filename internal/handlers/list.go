package handlers

import (
	"context"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

// ItemLister defines the interface that the service must implement.
type ItemLister interface {
	List(ctx context.Context, role, itemType string) ([]models.ItemResponse, error)
}

// NewListItemsHandler returns an HTTP handler for listing active items.
// @Summary List active items
// @Description Returns all active items, newest first, optionally filtered by reporter role and report type. A filter value of "all" means no restriction.
// @Tags items
// @Produce json
// @Param role query string false "Reporter role filter" Enums(all, student, teacher, staff)
// @Param type query string false "Report type filter" Enums(all, lost, found)
// @Success 200 {array} models.ItemResponse "Active items"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/items [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := r.URL.Query().Get("role")
		itemType := r.URL.Query().Get("type")

		items, err := svc.List(r.Context(), role, itemType)
		if err != nil {
			logger.Log.Errorw("failed to list items", "role", role, "type", itemType, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
