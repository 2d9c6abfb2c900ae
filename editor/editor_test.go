package editor

import (
	"reflect"
	"testing"

	"tripforge/models"
	"tripforge/utils"
)

func TestNavigationClamps(t *testing.T) {
	s := NewSession(models.NewItinerary(utils.GetUUID()))

	if s.Step != StepSummary {
		t.Fatalf("new session starts at %q, want summary", s.Step)
	}

	s.Retreat()
	if s.Step != StepSummary {
		t.Errorf("retreat from first step moved to %q", s.Step)
	}

	for i := 0; i < 3; i++ {
		s.Advance()
	}
	if s.Step != StepPolicies {
		t.Fatalf("three advances reached %q, want policies", s.Step)
	}

	s.Advance()
	if s.Step != StepPolicies {
		t.Errorf("advance past last step moved to %q", s.Step)
	}
}

func TestJumpTo(t *testing.T) {
	s := NewSession(models.NewItinerary(utils.GetUUID()))

	if !s.JumpTo(StepDetails) {
		t.Fatal("jump to a known step refused")
	}
	if s.Step != StepDetails {
		t.Errorf("step = %q after jump, want details", s.Step)
	}
	if s.JumpTo(Step("bogus")) {
		t.Error("jump to unknown step accepted")
	}
	if s.Step != StepDetails {
		t.Errorf("failed jump moved cursor to %q", s.Step)
	}
}

func TestApplyPatchIsShallow(t *testing.T) {
	s := NewSession(models.NewItinerary(utils.GetUUID()))
	originalBank := s.Draft.BankDetails

	// Replacing tripSummary wholesale drops fields the patch left zero.
	summary := models.TripSummary{LeadTraveler: "Meera V", GroupSize: 4}
	show := true
	s.ApplyPatch(Patch{TripSummary: &summary, ShowDayZero: &show})

	if s.Draft.TripSummary.LeadTraveler != "Meera V" {
		t.Errorf("leadTraveler = %q", s.Draft.TripSummary.LeadTraveler)
	}
	if s.Draft.TripSummary.Transport != "" {
		t.Errorf("shallow merge kept old nested field: %q", s.Draft.TripSummary.Transport)
	}
	if !s.Draft.ShowDayZero {
		t.Error("showDayZero not applied")
	}
	if s.Draft.BankDetails != originalBank {
		t.Error("untouched field changed")
	}
}

func TestBlankItineraryDefaults(t *testing.T) {
	it := models.NewItinerary(utils.GetUUID())

	var dayZero []models.ItineraryDay
	for _, d := range it.Days {
		if d.Day == 0 {
			dayZero = append(dayZero, d)
		}
	}
	if len(dayZero) != 1 {
		t.Fatalf("blank itinerary has %d day-zero entries, want 1", len(dayZero))
	}
	if !dayZero[0].IsDisabled {
		t.Error("day zero starts enabled")
	}
	if it.ShowDayZero {
		t.Error("showDayZero defaults to true")
	}
	if !reflect.DeepEqual(it.Inclusions, models.DefaultInclusions) {
		t.Errorf("inclusions = %v", it.Inclusions)
	}
	if !reflect.DeepEqual(it.Exclusions, models.DefaultExclusions) {
		t.Errorf("exclusions = %v", it.Exclusions)
	}
	if !reflect.DeepEqual(it.TermsAndConditions, models.DefaultTermsAndConditions) {
		t.Error("terms and conditions differ from defaults")
	}
	if !reflect.DeepEqual(it.CancellationPolicy, models.DefaultCancellationPolicy) {
		t.Error("cancellation policy differs from defaults")
	}
	if it.Status != models.StatusQuoteSent {
		t.Errorf("status = %q", it.Status)
	}
}

func TestDuplicateForCopy(t *testing.T) {
	doc := models.NewItinerary(utils.GetUUID())
	doc.QuotationNumber = "AH26-DOM-FIT-007"
	doc.TripSummary.LeadTraveler = "Arun Kumar"
	doc.TripSummary.Destinations = []string{"Munnar", "Thekkady"}
	doc.Days[1].Activities = []string{"Check-in", "Beach walk"}

	dup := DuplicateForCopy(doc)

	if dup.ID == doc.ID {
		t.Error("copy kept the original id")
	}
	if dup.QuotationNumber != "AH26-DOM-FIT-007-COPY" {
		t.Errorf("quotationNumber = %q", dup.QuotationNumber)
	}
	if dup.TripSummary.LeadTraveler != "Arun Kumar (Copy)" {
		t.Errorf("leadTraveler = %q", dup.TripSummary.LeadTraveler)
	}

	// Everything else deep-equal.
	dup.ID = doc.ID
	dup.QuotationNumber = doc.QuotationNumber
	dup.TripSummary.LeadTraveler = doc.TripSummary.LeadTraveler
	if !reflect.DeepEqual(dup, doc) {
		t.Error("copy differs from original beyond id, quotation number, and lead traveler")
	}

	// Deep copy: mutating the duplicate must not leak back.
	dup.Days[1].Activities[0] = "changed"
	if doc.Days[1].Activities[0] != "Check-in" {
		t.Error("copy shares day slices with the original")
	}
}

func TestNormalizeDropsBlankLines(t *testing.T) {
	it := models.NewItinerary(utils.GetUUID())
	it.Inclusions = []string{"Accommodation", "", "Breakfast", ""}
	it.Exclusions = []string{"", ""}
	it.Normalize()

	if !reflect.DeepEqual(it.Inclusions, []string{"Accommodation", "Breakfast"}) {
		t.Errorf("inclusions = %v", it.Inclusions)
	}
	if len(it.Exclusions) != 0 {
		t.Errorf("exclusions = %v, want empty", it.Exclusions)
	}
}
