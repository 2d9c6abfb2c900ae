package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tripforge/editor"
	"tripforge/models"
	"tripforge/repo"
	"tripforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler serves the itinerary dashboard: listing, search, copy, delete,
// and status changes. All writes surface failure once and rely on the next
// list snapshot for confirmation.
type Handler struct {
	Itineraries *repo.ItineraryRepo
}

func NewHandler(itineraries *repo.ItineraryRepo) *Handler {
	return &Handler{Itineraries: itineraries}
}

// GET /api/itineraries?q=
func (h *Handler) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itineraries, err := h.Itineraries.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	itineraries = Filter(itineraries, r.URL.Query().Get("q"))
	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:id
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := h.Itineraries.Get(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// DELETE /api/itineraries/:id
// The confirmation dialog lives client-side; the delete itself is
// idempotent.
func (h *Handler) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Itineraries.Delete(ctx, ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// PATCH /api/itineraries/:id/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Status models.ItineraryStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := h.Itineraries.UpdateStatus(ctx, ps.ByName("id"), req.Status)
	switch {
	case err == mongo.ErrNoDocuments:
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, utils.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating status")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
	}
}

// POST /api/itineraries/:id/copy
// Persists the duplicate immediately; it is not opened for editing.
func (h *Handler) CopyItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	original, err := h.Itineraries.Get(ctx, ps.ByName("id"))
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itinerary")
		return
	}

	dup := editor.DuplicateForCopy(original)
	if err := h.Itineraries.Upsert(ctx, dup); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error copying itinerary")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dup)
}
