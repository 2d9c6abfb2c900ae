package editor

import (
	"context"

	"tripforge/models"
	"tripforge/repo"
	"tripforge/utils"
)

// Step is one page of the four-step editing form.
type Step string

const (
	StepSummary  Step = "summary"
	StepDays     Step = "itinerary"
	StepDetails  Step = "details"
	StepPolicies Step = "policies"
)

var stepOrder = []Step{StepSummary, StepDays, StepDetails, StepPolicies}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

func ValidStep(s Step) bool { return s.index() >= 0 }

// Patch carries a shallow partial update: a non-nil field replaces the
// draft's whole named field. Nested reads-modify-writes are the caller's
// job; there is no deep merge.
type Patch struct {
	QuotationNumber    *string                  `json:"quotationNumber,omitempty"`
	Status             *models.ItineraryStatus  `json:"status,omitempty"`
	TripSummary        *models.TripSummary      `json:"tripSummary,omitempty"`
	Days               *[]models.ItineraryDay   `json:"itinerary,omitempty"`
	Inclusions         *[]string                `json:"inclusions,omitempty"`
	Exclusions         *[]string                `json:"exclusions,omitempty"`
	Notes              *[]string                `json:"notes,omitempty"`
	TermsAndConditions *[]string                `json:"termsAndConditions,omitempty"`
	CancellationPolicy *[]string                `json:"cancellationPolicy,omitempty"`
	BankDetails        *models.BankDetails      `json:"bankDetails,omitempty"`
	ShowDayZero        *bool                    `json:"showDayZero,omitempty"`
	CustomFields       *[]models.CustomField    `json:"customFields,omitempty"`
}

// Session holds the single in-progress draft plus the form step cursor.
// The draft id is fixed at session creation and decides create-vs-replace
// on save.
type Session struct {
	ID    string           `json:"sessionId"`
	Draft models.Itinerary `json:"draft"`
	Step  Step             `json:"step"`
}

// NewSession opens an edit session around a document. Fresh drafts come
// from models.NewItinerary or an extraction result.
func NewSession(draft models.Itinerary) *Session {
	return &Session{
		ID:    utils.GetUUID(),
		Draft: draft,
		Step:  StepSummary,
	}
}

func (s *Session) ApplyPatch(p Patch) {
	if p.QuotationNumber != nil {
		s.Draft.QuotationNumber = *p.QuotationNumber
	}
	if p.Status != nil {
		s.Draft.Status = *p.Status
	}
	if p.TripSummary != nil {
		s.Draft.TripSummary = *p.TripSummary
	}
	if p.Days != nil {
		s.Draft.Days = *p.Days
	}
	if p.Inclusions != nil {
		s.Draft.Inclusions = *p.Inclusions
	}
	if p.Exclusions != nil {
		s.Draft.Exclusions = *p.Exclusions
	}
	if p.Notes != nil {
		s.Draft.Notes = *p.Notes
	}
	if p.TermsAndConditions != nil {
		s.Draft.TermsAndConditions = *p.TermsAndConditions
	}
	if p.CancellationPolicy != nil {
		s.Draft.CancellationPolicy = *p.CancellationPolicy
	}
	if p.BankDetails != nil {
		s.Draft.BankDetails = *p.BankDetails
	}
	if p.ShowDayZero != nil {
		s.Draft.ShowDayZero = *p.ShowDayZero
	}
	if p.CustomFields != nil {
		s.Draft.CustomFields = *p.CustomFields
	}
}

// Advance moves to the next step; a no-op on the last one.
func (s *Session) Advance() {
	if i := s.Step.index(); i >= 0 && i < len(stepOrder)-1 {
		s.Step = stepOrder[i+1]
	}
}

// Retreat moves to the previous step; a no-op on the first one.
func (s *Session) Retreat() {
	if i := s.Step.index(); i > 0 {
		s.Step = stepOrder[i-1]
	}
}

// JumpTo navigates directly; always allowed for a known step.
func (s *Session) JumpTo(step Step) bool {
	if !ValidStep(step) {
		return false
	}
	s.Step = step
	return true
}

// Save writes the draft through the repository. On failure the draft and
// cursor are left untouched so the editor keeps its state.
func (s *Session) Save(ctx context.Context, itineraries *repo.ItineraryRepo) error {
	draft := s.Draft.Clone()
	draft.Normalize()
	if err := itineraries.Upsert(ctx, draft); err != nil {
		return err
	}
	s.Draft = draft
	return nil
}

// DuplicateForCopy produces a new document from an existing one: fresh id,
// quotation number suffixed, lead traveler annotated. Everything else is a
// deep copy. The caller persists it immediately; it is not staged for
// editing.
func DuplicateForCopy(doc models.Itinerary) models.Itinerary {
	out := doc.Clone()
	out.ID = utils.GetUUID()
	out.QuotationNumber = doc.QuotationNumber + "-COPY"
	out.TripSummary.LeadTraveler = doc.TripSummary.LeadTraveler + " (Copy)"
	return out
}
