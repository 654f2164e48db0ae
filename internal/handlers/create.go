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

// ItemCreator defines the interface that the service must implement.
type ItemCreator interface {
	Create(ctx context.Context, role, itemType, name, description, location, contactInfo string) (*models.ItemResponse, error)
}

// CreateItemRequest represents the JSON body for reporting an item.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Reporter role
	// default: student
	Role string `json:"role"`

	// Report kind
	// default: lost
	Type string `json:"type"`

	// Item name
	// required: true
	// default: Blue Water Bottle
	Name string `json:"name"`

	// Free-text description
	Description string `json:"description"`

	// Where the item was lost or found
	Location string `json:"location"`

	// Optional contact information
	ContactInfo string `json:"contact_info"`
}

// NewCreateItemHandler returns an HTTP handler for reporting a new item.
// @Summary Report a lost or found item
// @Description Creates a new item report. Name is required; role defaults to student and type to lost. Unknown role or type values are rejected.
// @Tags items
// @Accept json
// @Produce json
// @Param request body handlers.CreateItemRequest true "Item report"
// @Success 201 {object} models.ItemResponse "Created item"
// @Failure 400 {object} handlers.ErrorResponse "Missing name or unknown role/type"
// @Failure 500 {object} handlers.ErrorResponse "Persistence failure"
// @Router /api/items [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Create(r.Context(), req.Role, req.Type, req.Name, req.Description, req.Location, req.ContactInfo)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNameRequired):
				writeError(w, http.StatusBadRequest, "Item name is required")
			case errors.Is(err, services.ErrInvalidRole), errors.Is(err, services.ErrInvalidType):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to create item", "error", err)
				// The raw store error is surfaced on this endpoint.
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}
