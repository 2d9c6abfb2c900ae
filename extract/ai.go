package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tripforge/models"
	"tripforge/utils"

	"google.golang.org/genai"
)

const extractionModel = "gemini-2.0-flash"

const extractionPrompt = `You are a professional travel coordinator. Extract structured travel itinerary data from the provided text.
If certain information is missing, leave the field empty.
Respond with a single JSON object using these keys:
  quotationNumber (string),
  tripSummary (object: consultant {name, contact}, quotationDate, reference, leadTraveler, groupSize (number), travelDate, purpose, duration, destinations (string array), transport, costWithFood, costWithoutFood),
  itinerary (array of {day (number), title, activities (string array)}),
  inclusions (string array),
  exclusions (string array).

Text to analyze:
%s`

// Extractor calls the Gemini API to turn raw quote text into a partial
// itinerary document.
type Extractor struct {
	client *genai.Client
}

func NewExtractor(ctx context.Context) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Extractor{client: client}, nil
}

// Extract is one-shot: no retries, no cancellation once submitted beyond
// the request context.
func (e *Extractor) Extract(ctx context.Context, text string) (models.Itinerary, error) {
	var partial models.Itinerary

	resp, err := e.client.Models.GenerateContent(ctx,
		extractionModel,
		genai.Text(fmt.Sprintf(extractionPrompt, text)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return partial, fmt.Errorf("%w: %v", utils.ErrExtractionFailure, err)
	}

	output := strings.TrimSpace(resp.Text())
	if output == "" {
		return partial, fmt.Errorf("%w: empty response", utils.ErrExtractionFailure)
	}
	if err := json.Unmarshal([]byte(output), &partial); err != nil {
		return partial, fmt.Errorf("%w: unparseable response: %v", utils.ErrExtractionFailure, err)
	}
	return partial, nil
}

// MergeExtracted lays a partial extraction result over a blank quotation.
// Only fields the service actually produced replace the defaults.
func MergeExtracted(base, partial models.Itinerary) models.Itinerary {
	out := base

	if partial.QuotationNumber != "" {
		out.QuotationNumber = partial.QuotationNumber
	}

	ps := partial.TripSummary
	if ps.Consultant.Name != "" {
		out.TripSummary.Consultant = ps.Consultant
	}
	if ps.QuotationDate != "" {
		out.TripSummary.QuotationDate = ps.QuotationDate
	}
	if ps.Reference != "" {
		out.TripSummary.Reference = ps.Reference
	}
	if ps.LeadTraveler != "" {
		out.TripSummary.LeadTraveler = ps.LeadTraveler
	}
	if ps.GroupSize > 0 {
		out.TripSummary.GroupSize = ps.GroupSize
	}
	if ps.TravelDate != "" {
		out.TripSummary.TravelDate = ps.TravelDate
	}
	if ps.Purpose != "" {
		out.TripSummary.Purpose = ps.Purpose
	}
	if ps.Duration != "" {
		out.TripSummary.Duration = ps.Duration
	}
	if len(ps.Destinations) > 0 {
		out.TripSummary.Destinations = ps.Destinations
	}
	if ps.Transport != "" {
		out.TripSummary.Transport = ps.Transport
	}
	if ps.CostWithFood != "" {
		out.TripSummary.CostWithFood = ps.CostWithFood
	}
	if ps.CostWithoutFood != "" {
		out.TripSummary.CostWithoutFood = ps.CostWithoutFood
	}

	if len(partial.Days) > 0 {
		days := make([]models.ItineraryDay, 0, len(partial.Days)+1)
		// The reserved pre-arrival day survives extraction.
		for _, d := range base.Days {
			if d.Day == 0 {
				days = append(days, d)
				break
			}
		}
		days = append(days, partial.Days...)
		out.Days = days
	}
	if len(partial.Inclusions) > 0 {
		out.Inclusions = partial.Inclusions
	}
	if len(partial.Exclusions) > 0 {
		out.Exclusions = partial.Exclusions
	}

	out.Normalize()
	return out
}
