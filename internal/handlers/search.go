package handlers

import (
	"context"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

// ItemSearcher defines the interface that the service must implement.
type ItemSearcher interface {
	Search(ctx context.Context, query string) ([]models.ItemResponse, error)
}

// NewSearchItemsHandler returns an HTTP handler for keyword search.
// @Summary Search active items
// @Description Case-insensitive substring search over name, description and location of active items. Queries shorter than two characters return an empty list.
// @Tags items
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.ItemResponse "Matching items, possibly empty"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/search [get]
func NewSearchItemsHandler(svc ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		items, err := svc.Search(r.Context(), query)
		if err != nil {
			logger.Log.Errorw("failed to search items", "query", query, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}
