package preview

import (
	"fmt"
	"strings"
	"time"

	"tripforge/models"
)

// Agency contact block printed on every quotation footer.
const (
	ContactPhone   = "+91 70109 33178"
	ContactEmail   = "contact@adventureholidays.co"
	ContactWebsite = "www.adventureholidays.co"
	ContactAddress = "2nd floor, Vishnu complex, Gandhipuram, Coimbatore"
)

// OverviewCard is one labeled entry of the journey overview.
type OverviewCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Sub   string `json:"sub,omitempty"`
}

type PriceLine struct {
	Label string `json:"label"`
	Price string `json:"price"`
	Unit  string `json:"unit,omitempty"`
}

type DaySection struct {
	Number     int      `json:"number"`
	DateLabel  string   `json:"dateLabel"`
	DayName    string   `json:"dayName"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
	Images     []string `json:"images"`
}

// Projection is the print-ready view of a quotation: every section in
// display order with all fallback text already applied.
type Projection struct {
	Greeting     string             `json:"greeting"`
	Reference    string             `json:"reference"`
	Overview     []OverviewCard     `json:"overview"`
	Prices       []PriceLine        `json:"prices"`
	Days         []DaySection       `json:"days"`
	Inclusions   []string           `json:"inclusions"`
	Exclusions   []string           `json:"exclusions"`
	Terms        []string           `json:"terms"`
	Cancellation []string           `json:"cancellation"`
	Bank         models.BankDetails `json:"bank"`
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// dayDate resolves the calendar date of a day: an explicit override wins,
// otherwise the trip's travel date offset by the day number. Day 0 shares
// the travel date itself.
func dayDate(it models.Itinerary, d models.ItineraryDay) (string, string) {
	raw := d.Date
	offset := 0
	if raw == "" {
		raw = it.TripSummary.TravelDate
		if d.Day > 0 {
			offset = d.Day - 1
		}
	}
	if raw == "" {
		return "TBA", ""
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw, ""
	}
	parsed = parsed.AddDate(0, 0, offset)
	return parsed.Format("2 Jan 2006"), parsed.Format("Monday")
}

// Project maps a quotation to its paginated layout content. Pure; the
// document is not modified.
func Project(it models.Itinerary) Projection {
	s := it.TripSummary

	overview := []OverviewCard{
		{Label: "Travel consultant", Value: s.Consultant.Name, Sub: s.Consultant.Contact},
		{Label: "Destinations", Value: fallback(strings.Join(s.Destinations, ", "), "Various")},
		{Label: "Duration", Value: fallback(s.Duration, "TBA")},
		{Label: "Date of travel", Value: fallback(s.TravelDate, "Flexible")},
		{Label: "Group size", Value: fmt.Sprintf("%d Pax", s.GroupSize)},
		{Label: "Purpose", Value: fallback(s.Purpose, "Adventure")},
		{Label: "Transports", Value: fallback(s.Transport, "Private vehicle")},
	}
	for _, f := range it.CustomFields {
		overview = append(overview, OverviewCard{Label: f.Heading, Value: f.Value})
	}

	var prices []PriceLine
	if len(s.PricingSlots) > 0 {
		for _, slot := range s.PricingSlots {
			prices = append(prices, PriceLine{
				Label: slot.Label,
				Price: fallback(slot.Price, "On request"),
				Unit:  slot.Unit,
			})
		}
	} else {
		prices = append(prices, PriceLine{Label: "With food", Price: fallback(s.CostWithFood, "On request")})
		if s.HasNoFoodCost {
			prices = append(prices, PriceLine{Label: "Without food", Price: fallback(s.CostWithoutFood, "On request")})
		}
	}

	var days []DaySection
	for _, d := range it.Days {
		if d.Day == 0 && d.IsDisabled {
			continue
		}
		dateLabel, dayName := dayDate(it, d)
		activities := make([]string, 0, len(d.Activities))
		for _, a := range d.Activities {
			if a != "" {
				activities = append(activities, a)
			}
		}
		days = append(days, DaySection{
			Number:     d.Day,
			DateLabel:  dateLabel,
			DayName:    dayName,
			Title:      fallback(d.Title, "Adventure day"),
			Activities: activities,
			Images:     d.Images,
		})
	}

	return Projection{
		Greeting:     fallback(s.LeadTraveler, "Adventurer"),
		Reference:    it.QuotationNumber,
		Overview:     overview,
		Prices:       prices,
		Days:         days,
		Inclusions:   it.Inclusions,
		Exclusions:   it.Exclusions,
		Terms:        it.TermsAndConditions,
		Cancellation: it.CancellationPolicy,
		Bank:         it.BankDetails,
	}
}

// ExportFileName names the exported file from the quote's identity fields
// joined with " - ".
func ExportFileName(it models.Itinerary) string {
	s := it.TripSummary
	parts := []string{
		it.QuotationNumber,
		s.LeadTraveler,
		strings.Join(s.Destinations, ", "),
		s.Duration,
		fmt.Sprintf("%d Pax", s.GroupSize),
	}
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " - ") + ".pdf"
}
