package models

func cloneLines(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}

// Clone returns a deep copy, so edits to a duplicate can never reach the
// original document through shared slices.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.TripSummary.Destinations = cloneLines(it.TripSummary.Destinations)
	if it.TripSummary.PricingSlots != nil {
		out.TripSummary.PricingSlots = append([]PricingSlot{}, it.TripSummary.PricingSlots...)
	}
	out.Inclusions = cloneLines(it.Inclusions)
	out.Exclusions = cloneLines(it.Exclusions)
	out.Notes = cloneLines(it.Notes)
	out.TermsAndConditions = cloneLines(it.TermsAndConditions)
	out.CancellationPolicy = cloneLines(it.CancellationPolicy)
	if it.CustomFields != nil {
		out.CustomFields = append([]CustomField{}, it.CustomFields...)
	}
	out.Days = make([]ItineraryDay, len(it.Days))
	for i, d := range it.Days {
		d.Activities = cloneLines(d.Activities)
		d.Images = cloneLines(d.Images)
		out.Days[i] = d
	}
	return out
}
