package extract

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"tripforge/models"
	"tripforge/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler accepts an uploaded quote document and returns a pre-filled
// draft for the editor. Nothing is persisted here.
type Handler struct {
	Extractor *Extractor
}

func NewHandler(extractor *Extractor) *Handler {
	return &Handler{Extractor: extractor}
}

// POST /api/extract
// Multipart form with a "document" file (PDF, DOCX, or text, max 10 MB).
func (h *Handler) ExtractDocument(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.Extractor == nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Document extraction is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "File exceeds the 10 MB limit")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing document file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	text, err := ExtractText(header.Filename, data)
	if err != nil {
		log.Printf("extract: %v", err)
		utils.RespondWithError(w, http.StatusUnprocessableEntity, userMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	partial, err := h.Extractor.Extract(ctx, text)
	if err != nil {
		log.Printf("extract: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, userMessage(err))
		return
	}

	draft := MergeExtracted(models.NewItinerary(utils.GetUUID()), partial)
	utils.RespondWithJSON(w, http.StatusOK, draft)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, utils.ErrParseFailure):
		return utils.ErrParseFailure.Error()
	case errors.Is(err, utils.ErrExtractionFailure):
		return utils.ErrExtractionFailure.Error()
	default:
		return "Extraction failed"
	}
}
