package keywords

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tripforge/models"
	"tripforge/repo"
	"tripforge/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the day-template catalog and keyword resolution.
type Handler struct {
	Templates *repo.TemplateRepo
}

func NewHandler(templates *repo.TemplateRepo) *Handler {
	return &Handler{Templates: templates}
}

// GET /api/templates
func (h *Handler) GetTemplates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	templates, err := h.Templates.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching templates")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, templates)
}

// POST /api/templates
func (h *Handler) SaveTemplate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var t models.DayTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if t.ID == "" {
		t.ID = utils.GetUUID()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Templates.Upsert(ctx, t); err != nil {
		if errors.Is(err, utils.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving template")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}

// DELETE /api/templates/:id
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Templates.Delete(ctx, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting template")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// POST /api/templates/resolve
// Body: an ItineraryDay; responds with the day after template substitution.
func (h *Handler) ResolveDay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var day models.ItineraryDay
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	catalog, err := h.Templates.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching templates")
		return
	}

	resolved, err := Resolve(day, catalog)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, ErrUnresolved.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}
