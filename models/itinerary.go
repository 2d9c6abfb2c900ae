package models

// ItineraryStatus tracks where a quotation is in its sales lifecycle.
type ItineraryStatus string

const (
	StatusConverted ItineraryStatus = "Converted"
	StatusQuoteSent ItineraryStatus = "Quote Sent"
	StatusLost      ItineraryStatus = "Lost"
)

func (s ItineraryStatus) Valid() bool {
	switch s {
	case StatusConverted, StatusQuoteSent, StatusLost:
		return true
	}
	return false
}

type Consultant struct {
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}

// PricingSlot is one labeled entry in the cost breakdown. Price is a
// display string, not a number, since quotes carry currency symbols and
// ranges verbatim.
type PricingSlot struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
	Price string `json:"price" bson:"price"`
	Unit  string `json:"unit" bson:"unit"`
}

type CustomField struct {
	ID      string `json:"id" bson:"id"`
	Heading string `json:"heading" bson:"heading"`
	Value   string `json:"value" bson:"value"`
}

type BankDetails struct {
	AccountName   string `json:"accountName" bson:"account_name"`
	Bank          string `json:"bank" bson:"bank"`
	AccountNumber string `json:"accountNumber" bson:"account_number"`
	IFSC          string `json:"ifsc" bson:"ifsc"`
}

type TripSummary struct {
	Consultant    Consultant    `json:"consultant" bson:"consultant"`
	QuotationDate string        `json:"quotationDate" bson:"quotation_date"`
	Reference     string        `json:"reference" bson:"reference"`
	LeadTraveler  string        `json:"leadTraveler" bson:"lead_traveler"`
	GroupSize     int           `json:"groupSize" bson:"group_size"`
	TravelDate    string        `json:"travelDate" bson:"travel_date"`
	Purpose       string        `json:"purpose" bson:"purpose"`
	Duration      string        `json:"duration" bson:"duration"`
	Destinations  []string      `json:"destinations" bson:"destinations"`
	Transport     string        `json:"transport" bson:"transport"`
	PricingSlots  []PricingSlot `json:"pricingSlots" bson:"pricing_slots"`

	// Legacy cost pair, kept for quotes created before pricing slots.
	CostWithFood    string `json:"costWithFood" bson:"cost_with_food"`
	CostWithoutFood string `json:"costWithoutFood" bson:"cost_without_food"`
	HasNoFoodCost   bool   `json:"hasNoFoodCost" bson:"has_no_food_cost"`
}

// ItineraryDay is one entry of the day-by-day plan. Day 0 is reserved for
// pre-arrival notes and hidden unless the document enables it. List order
// is display order; callers must not assume it is sorted by Day.
type ItineraryDay struct {
	Day        int      `json:"day" bson:"day"`
	Date       string   `json:"date,omitempty" bson:"date,omitempty"`
	Title      string   `json:"title" bson:"title"`
	Activities []string `json:"activities" bson:"activities"`
	Keywords   string   `json:"keywords,omitempty" bson:"keywords,omitempty"`
	Images     []string `json:"images,omitempty" bson:"images,omitempty"`
	IsDisabled bool     `json:"isDisabled,omitempty" bson:"is_disabled,omitempty"`
}

// Itinerary is the full quotation document. Saves replace the whole
// document; only Status has a field-level update path.
type Itinerary struct {
	ID                 string          `json:"id" bson:"itineraryid"`
	QuotationNumber    string          `json:"quotationNumber" bson:"quotation_number"`
	Status             ItineraryStatus `json:"status" bson:"status"`
	TripSummary        TripSummary     `json:"tripSummary" bson:"trip_summary"`
	Days               []ItineraryDay  `json:"itinerary" bson:"days"`
	Inclusions         []string        `json:"inclusions" bson:"inclusions"`
	Exclusions         []string        `json:"exclusions" bson:"exclusions"`
	Notes              []string        `json:"notes" bson:"notes"`
	TermsAndConditions []string        `json:"termsAndConditions" bson:"terms_and_conditions"`
	CancellationPolicy []string        `json:"cancellationPolicy" bson:"cancellation_policy"`
	BankDetails        BankDetails     `json:"bankDetails" bson:"bank_details"`
	ShowDayZero        bool            `json:"showDayZero" bson:"show_day_zero"`
	CustomFields       []CustomField   `json:"customFields" bson:"custom_fields"`
}

func dropBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Normalize prepares the document for a write: blank free-text lines are
// dropped and nil slices become empty ones so the stored shape is stable.
func (it *Itinerary) Normalize() {
	it.Inclusions = dropBlankLines(it.Inclusions)
	it.Exclusions = dropBlankLines(it.Exclusions)
	it.Notes = dropBlankLines(it.Notes)
	it.TermsAndConditions = dropBlankLines(it.TermsAndConditions)
	it.CancellationPolicy = dropBlankLines(it.CancellationPolicy)

	if it.TripSummary.Destinations == nil {
		it.TripSummary.Destinations = []string{}
	}
	if it.TripSummary.PricingSlots == nil {
		it.TripSummary.PricingSlots = []PricingSlot{}
	}
	if it.CustomFields == nil {
		it.CustomFields = []CustomField{}
	}
	if it.Days == nil {
		it.Days = []ItineraryDay{}
	}
	for i := range it.Days {
		if it.Days[i].Activities == nil {
			it.Days[i].Activities = []string{}
		}
		if it.Days[i].Images == nil {
			it.Days[i].Images = []string{}
		}
	}
}
