package keywords

import (
	"errors"
	"strings"

	"tripforge/models"
)

// ErrUnresolved means no template matched the day's keyword. The caller
// shows a notice and leaves the day alone.
var ErrUnresolved = errors.New("no template found for this keyword")

// Resolve looks up the first template whose keyword matches the day's
// keyword case-insensitively and returns the day with its title and
// activities replaced by the template's. Every other field, including
// images and the date override, is preserved.
func Resolve(day models.ItineraryDay, catalog []models.DayTemplate) (models.ItineraryDay, error) {
	if day.Keywords == "" {
		return day, ErrUnresolved
	}
	for _, t := range catalog {
		if strings.EqualFold(t.Keyword, day.Keywords) {
			day.Title = t.Title
			day.Activities = append([]string{}, t.Activities...)
			return day, nil
		}
	}
	return day, ErrUnresolved
}
