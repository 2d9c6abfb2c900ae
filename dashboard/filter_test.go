package dashboard

import (
	"reflect"
	"testing"

	"tripforge/models"
)

func doc(id, quotation, traveler string, destinations ...string) models.Itinerary {
	return models.Itinerary{
		ID:              id,
		QuotationNumber: quotation,
		TripSummary: models.TripSummary{
			LeadTraveler: traveler,
			Destinations: destinations,
		},
	}
}

func ids(docs []models.Itinerary) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func TestFilterMatchesFields(t *testing.T) {
	docs := []models.Itinerary{
		doc("a", "AH26-DOM-FIT-001", "Arun Kumar", "Munnar", "Thekkady"),
		doc("b", "AH26-INTL-SCH-002", "Deepak S", "Bali"),
		doc("c", "AH26-DOM-CPL-003", "Meera V", "Ooty", "Coonoor"),
	}

	cases := []struct {
		search string
		want   []string
	}{
		{"arun", []string{"a"}},            // lead traveler, case-insensitive
		{"INTL", []string{"b"}},            // quotation number
		{"ooty", []string{"c"}},            // destination
		{"coonoor", []string{"c"}},         // later destination
		{"Ooty, Coonoor", []string{"c"}},   // across the comma join
		{"ah26", []string{"a", "b", "c"}},  // shared prefix, order preserved
		{"nowhere", []string{}},
	}

	for _, tc := range cases {
		got := ids(Filter(docs, tc.search))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Filter(%q) = %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestFilterEmptySearchReturnsAllInOrder(t *testing.T) {
	docs := []models.Itinerary{
		doc("z", "Q3", "C"),
		doc("y", "Q1", "A"),
		doc("x", "Q2", "B"),
	}

	got := Filter(docs, "")
	if !reflect.DeepEqual(got, docs) {
		t.Errorf("empty search changed the list: %v", ids(got))
	}
}
