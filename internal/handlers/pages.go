package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/services"
)

// NewIndexPageHandler returns an HTTP handler for the list page. The page is
// static and hydrates itself client-side from GET /api/items.
func NewIndexPageHandler(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
			logger.Log.Errorw("failed to render index page", "error", err)
		}
	}
}

// NewItemDetailPageHandler returns an HTTP handler for the server-rendered
// item detail page.
func NewItemDetailPageHandler(svc ItemGetter, tmpl *template.Template) http.HandlerFunc {
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
			logger.Log.Errorw("failed to load item for detail page", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "item_detail.html", item); err != nil {
			logger.Log.Errorw("failed to render detail page", "id", id, "error", err)
		}
	}
}
