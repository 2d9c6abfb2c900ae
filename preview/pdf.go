package preview

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"tripforge/models"
	"tripforge/repo"
	"tripforge/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler renders saved quotations.
type Handler struct {
	Itineraries *repo.ItineraryRepo
}

func NewHandler(itineraries *repo.ItineraryRepo) *Handler {
	return &Handler{Itineraries: itineraries}
}

// GET /api/itineraries/:id/preview
// Returns the projection for on-screen rendering.
func (h *Handler) GetPreview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
	utils.RespondWithJSON(w, http.StatusOK, Project(it))
}

// GET /api/itineraries/:id/export
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
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

	buf, err := RenderPDF(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName(it)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// RenderPDF lays the projection out as an A4 document, section by section
// in display order, with the agency contact QR on the last page.
func RenderPDF(it models.Itinerary) (*bytes.Buffer, error) {
	p := Project(it)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 22)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, "Hey", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 26)
	pdf.CellFormat(0, 14, p.Greeting, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, "here's your curated tour itinerary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Reference: "+p.Reference, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Journey overview
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Journey overview", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 11)
	for _, card := range p.Overview {
		line := fmt.Sprintf("%s: %s", card.Label, card.Value)
		if card.Sub != "" {
			line += " (" + card.Sub + ")"
		}
		pdf.MultiCell(0, 7, line, "", "L", false)
	}
	pdf.Ln(2)
	for _, price := range p.Prices {
		line := fmt.Sprintf("%s: %s", price.Label, price.Price)
		if price.Unit != "" {
			line += " " + price.Unit
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 7, line, "", "L", false)
	}
	pdf.Ln(6)

	// Day by day
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "The experience", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	for _, day := range p.Days {
		pdf.SetFont("Arial", "B", 12)
		header := fmt.Sprintf("Day %02d - %s", day.Number, day.Title)
		pdf.MultiCell(0, 8, header, "", "L", false)
		pdf.SetFont("Arial", "I", 9)
		dateLine := day.DateLabel
		if day.DayName != "" {
			dateLine += ", " + day.DayName
		}
		pdf.CellFormat(0, 6, dateLine, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			pdf.MultiCell(0, 7, "- "+act, "", "L", false)
		}
		pdf.Ln(4)
	}

	// Inclusions / exclusions
	writeList := func(title string, lines []string) {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, title, "B", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 11)
		for _, line := range lines {
			pdf.MultiCell(0, 7, "- "+line, "", "L", false)
		}
		pdf.Ln(4)
	}
	writeList("Inclusions", p.Inclusions)
	writeList("Exclusions", p.Exclusions)
	writeList("Terms & conditions", p.Terms)
	writeList("Cancellation policy", p.Cancellation)

	// Bank details
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Bank transfers", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Bank name: %s\nA/c name: %s\nA/c number: %s\nIFSC code: %s",
		p.Bank.Bank, p.Bank.AccountName, p.Bank.AccountNumber, p.Bank.IFSC,
	), "", "L", false)
	pdf.Ln(8)

	// Contact footer with QR
	qrPayload := fmt.Sprintf("tel:%s", ContactPhone)
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err == nil {
		imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("contact-qr", imgOpts, bytes.NewReader(qrPNG))
		x := pdf.GetX()
		y := pdf.GetY()
		pdf.ImageOptions("contact-qr", 160, y, 30, 30, false, imgOpts, 0, "")
		pdf.SetXY(x, y)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Find us here", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(130, 6, fmt.Sprintf("%s\n%s\n%s\n%s",
		ContactPhone, ContactEmail, ContactWebsite, ContactAddress), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
