package dashboard

import (
	"strings"

	"tripforge/models"
)

// Filter returns the itineraries matching the search text, in their
// original order. A document matches when the lowercased search is a
// substring of its quotation number, lead traveler, or comma-joined
// destination list. Empty search matches everything. No ranking.
func Filter(docs []models.Itinerary, search string) []models.Itinerary {
	if search == "" {
		return docs
	}
	q := strings.ToLower(search)
	out := make([]models.Itinerary, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.QuotationNumber), q) ||
			strings.Contains(strings.ToLower(d.TripSummary.LeadTraveler), q) ||
			strings.Contains(strings.ToLower(strings.Join(d.TripSummary.Destinations, ", ")), q) {
			out = append(out, d)
		}
	}
	return out
}
