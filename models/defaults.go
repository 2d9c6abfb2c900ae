package models

import "time"

// Boilerplate carried into every new quotation. Agencies tweak these in
// the editor; the defaults match the printed quote format.
var DefaultTermsAndConditions = []string{
	"Package confirmation will only be upon half of the payment and the balance before 72 Hours of Departure.",
	"The Accommodation, Vehicle, Tour Organizer allotments will be done thereafter.",
	"Hotels are Subject to Availability.",
	"Natural Calamities, Road Traffic, Public Crowd, Sightseeing Walk is mandatory.",
	"A Detailed PPT Presentation will be done before 72 hours before the tour date.",
	"The Co-operation of all the Tourists are merely important as traffic delays, some long Walks are unavoidable in a trip.",
	"The Tourists should Co-operate the organizers in the timings allotted for all sightseeing places, which in delay will end in the forthcoming place which was planned to visit.",
	"The Internal/External belongings of the Tourists should be taken care by themselves whereas the Organizers or the Management or the Chauffer is not responsible for the same.",
	"The Prices given above has a validity of 48 hours from the date of quote provided. Please contact the undersigned before making payment without fail.",
	"The payments made without intimation will be on hold.",
	"Account Details will be sent as per Request.",
	"Changes in tour must be before 30 days of the tour.",
	"If so 5% of the package cost will be deducted.",
}

var DefaultCancellationPolicy = []string{
	"45 days prior to Tour: 10% of the Tour package.",
	"15 days prior to Tour: 25% of the Tour Package.",
	"07 days prior to Tour: 50% of the Tour Package.",
	"72 hours prior to Tour OR No Show: No Refund.",
}

var DefaultInclusions = []string{"Private Vehicle", "Driver Allowance", "Parking & Toll", "Accommodation"}

var DefaultExclusions = []string{"GST 5%", "Personal Expenses", "Airfare / Train fare"}

// NewItinerary returns a blank quotation seeded with the starter days and
// default policy text. Day 0 ("pre-arrival") always exists but starts
// disabled and hidden.
func NewItinerary(id string) Itinerary {
	return Itinerary{
		ID:              id,
		QuotationNumber: "AH26-DOM-FIT-001",
		Status:          StatusQuoteSent,
		TripSummary: TripSummary{
			Consultant:    Consultant{Name: "Siva", Contact: "+91 70109 33178"},
			QuotationDate: time.Now().Format("2006-01-02"),
			GroupSize:     1,
			Duration:      "2N/3D",
			Destinations:  []string{},
			Transport:     "Private Vehicle",
			PricingSlots:  []PricingSlot{},
			HasNoFoodCost: true,
		},
		Days: []ItineraryDay{
			{Day: 0, Title: "Pre-Arrival Notes", Activities: []string{}, Images: []string{}, IsDisabled: true},
			{Day: 1, Title: "Arrival & Welcome", Activities: []string{"Check-in and relaxation"}, Images: []string{}},
		},
		Inclusions:         append([]string{}, DefaultInclusions...),
		Exclusions:         append([]string{}, DefaultExclusions...),
		Notes:              []string{},
		TermsAndConditions: append([]string{}, DefaultTermsAndConditions...),
		CancellationPolicy: append([]string{}, DefaultCancellationPolicy...),
		BankDetails: BankDetails{
			AccountName:   "Adventure Holidays",
			Bank:          "Yes Bank, Gandhipuram, Coimbatore",
			AccountNumber: "135261900002320",
			IFSC:          "YESB0001352",
		},
		ShowDayZero:  false,
		CustomFields: []CustomField{},
	}
}
