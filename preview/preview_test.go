package preview

import (
	"reflect"
	"strings"
	"testing"

	"tripforge/models"
	"tripforge/utils"
)

func TestProjectFallbacks(t *testing.T) {
	it := models.Itinerary{
		ID:              utils.GetUUID(),
		QuotationNumber: "AH26-DOM-FIT-009",
		TripSummary:     models.TripSummary{GroupSize: 3, HasNoFoodCost: true},
	}

	p := Project(it)

	if p.Greeting != "Adventurer" {
		t.Errorf("greeting = %q", p.Greeting)
	}

	byLabel := map[string]string{}
	for _, card := range p.Overview {
		byLabel[card.Label] = card.Value
	}
	want := map[string]string{
		"Destinations":   "Various",
		"Duration":       "TBA",
		"Date of travel": "Flexible",
		"Purpose":        "Adventure",
		"Transports":     "Private vehicle",
		"Group size":     "3 Pax",
	}
	for label, value := range want {
		if byLabel[label] != value {
			t.Errorf("%s = %q, want %q", label, byLabel[label], value)
		}
	}

	if len(p.Prices) != 2 {
		t.Fatalf("prices = %v, want legacy with/without food pair", p.Prices)
	}
	for _, line := range p.Prices {
		if line.Price != "On request" {
			t.Errorf("%s price = %q, want On request", line.Label, line.Price)
		}
	}
}

func TestProjectSkipsDisabledDayZero(t *testing.T) {
	it := models.NewItinerary(utils.GetUUID())

	p := Project(it)
	for _, d := range p.Days {
		if d.Number == 0 {
			t.Fatal("disabled day zero was projected")
		}
	}

	it.Days[0].IsDisabled = false
	p = Project(it)
	if len(p.Days) == 0 || p.Days[0].Number != 0 {
		t.Fatal("enabled day zero missing from projection")
	}
}

func TestProjectDayDates(t *testing.T) {
	it := models.Itinerary{
		TripSummary: models.TripSummary{TravelDate: "2026-03-10"},
		Days: []models.ItineraryDay{
			{Day: 1, Title: "Arrival"},
			{Day: 3, Title: "Hills"},
			{Day: 4, Title: "Override", Date: "2026-04-01"},
		},
	}

	p := Project(it)
	if p.Days[0].DateLabel != "10 Mar 2026" {
		t.Errorf("day 1 date = %q", p.Days[0].DateLabel)
	}
	if p.Days[1].DateLabel != "12 Mar 2026" {
		t.Errorf("day 3 date = %q", p.Days[1].DateLabel)
	}
	if p.Days[2].DateLabel != "1 Apr 2026" {
		t.Errorf("override date = %q", p.Days[2].DateLabel)
	}
	if p.Days[0].DayName != "Tuesday" {
		t.Errorf("day 1 weekday = %q", p.Days[0].DayName)
	}
}

func TestProjectDayContent(t *testing.T) {
	it := models.Itinerary{
		Days: []models.ItineraryDay{
			{Day: 1, Activities: []string{"Walk", "", "Dinner"}, Images: []string{"u1"}},
		},
	}

	p := Project(it)
	if p.Days[0].Title != "Adventure day" {
		t.Errorf("title fallback = %q", p.Days[0].Title)
	}
	if !reflect.DeepEqual(p.Days[0].Activities, []string{"Walk", "Dinner"}) {
		t.Errorf("activities = %v, blank line kept", p.Days[0].Activities)
	}
	if p.Days[0].DateLabel != "TBA" {
		t.Errorf("date without travel date = %q", p.Days[0].DateLabel)
	}
}

func TestProjectPricingSlotsWinOverLegacy(t *testing.T) {
	it := models.Itinerary{
		TripSummary: models.TripSummary{
			PricingSlots: []models.PricingSlot{
				{ID: "s1", Label: "Deluxe", Price: "Rs. 18,000", Unit: "Per Pax"},
			},
			CostWithFood:  "ignored",
			HasNoFoodCost: true,
		},
	}

	p := Project(it)
	if len(p.Prices) != 1 || p.Prices[0].Label != "Deluxe" || p.Prices[0].Price != "Rs. 18,000" {
		t.Errorf("prices = %v", p.Prices)
	}
}

func TestExportFileName(t *testing.T) {
	it := models.Itinerary{
		QuotationNumber: "AH26-DOM-FIT-011",
		TripSummary: models.TripSummary{
			LeadTraveler: "Sowmya R",
			Destinations: []string{"Munnar", "Alleppey"},
			Duration:     "3N/4D",
			GroupSize:    2,
		},
	}

	got := ExportFileName(it)
	want := "AH26-DOM-FIT-011 - Sowmya R - Munnar, Alleppey - 3N/4D - 2 Pax.pdf"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}

	// Empty segments drop out instead of leaving dangling separators.
	bare := ExportFileName(models.Itinerary{QuotationNumber: "Q", TripSummary: models.TripSummary{GroupSize: 1}})
	if strings.Contains(bare, "-  -") || !strings.HasSuffix(bare, ".pdf") {
		t.Errorf("bare filename = %q", bare)
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	it := models.NewItinerary(utils.GetUUID())
	it.TripSummary.LeadTraveler = "Rajesh K"
	it.TripSummary.Destinations = []string{"Mysore"}

	buf, err := RenderPDF(it)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty PDF output")
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
}
