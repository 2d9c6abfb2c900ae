package editor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"tripforge/models"
	"tripforge/repo"
	"tripforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler exposes the edit session lifecycle over HTTP.
type Handler struct {
	Itineraries *repo.ItineraryRepo
	Sessions    Store
}

func NewHandler(itineraries *repo.ItineraryRepo) *Handler {
	return &Handler{Itineraries: itineraries}
}

type openRequest struct {
	// ItineraryID opens an existing document; Draft opens a pre-filled one
	// (extraction result). Both empty means a blank new quotation.
	ItineraryID string            `json:"itineraryId,omitempty"`
	Draft       *models.Itinerary `json:"draft,omitempty"`
}

// POST /api/editor/sessions
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var draft models.Itinerary
	switch {
	case req.ItineraryID != "":
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		existing, err := h.Itineraries.Get(ctx, req.ItineraryID)
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error loading itinerary")
			return
		}
		draft = existing
	case req.Draft != nil:
		draft = *req.Draft
		if draft.ID == "" {
			draft.ID = utils.GetUUID()
		}
		draft.Normalize()
	default:
		draft = models.NewItinerary(utils.GetUUID())
	}

	session := NewSession(draft)
	if err := h.Sessions.Save(session); err != nil {
		log.Printf("editor: session save failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error opening session")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, session)
}

// GET /api/editor/sessions/:id
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.Sessions.Load(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// PATCH /api/editor/sessions/:id
func (h *Handler) PatchSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.Sessions.Load(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session.ApplyPatch(patch)
	if err := h.Sessions.Save(session); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

type navigateRequest struct {
	Action string `json:"action"` // advance | retreat | jump
	Step   Step   `json:"step,omitempty"`
}

// POST /api/editor/sessions/:id/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.Sessions.Load(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	switch req.Action {
	case "advance":
		session.Advance()
	case "retreat":
		session.Retreat()
	case "jump":
		if !session.JumpTo(req.Step) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown step")
			return
		}
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown action")
		return
	}

	if err := h.Sessions.Save(session); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// POST /api/editor/sessions/:id/save
// Persists the draft and discards the session; a failed save keeps both.
func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, err := h.Sessions.Load(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := session.Save(ctx, h.Itineraries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}
	if err := h.Sessions.Delete(session.ID); err != nil {
		log.Printf("editor: session cleanup failed: %v", err)
	}
	utils.RespondWithJSON(w, http.StatusOK, session.Draft)
}
