package handlers

import (
	"context"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

// StatsReader defines the interface that the service must implement.
type StatsReader interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler for the dashboard counters.
// @Summary Get dashboard statistics
// @Description Returns counts of active and returned items, active lost/found items, and two keyword-based category buckets over active item names.
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats "Counters"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/stats [get]
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get stats", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
