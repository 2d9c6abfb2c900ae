package keywords

import (
	"errors"
	"reflect"
	"testing"

	"tripforge/models"
)

func TestResolveReplacesTitleAndActivities(t *testing.T) {
	day := models.ItineraryDay{
		Day:        2,
		Date:       "2026-01-15",
		Title:      "Old title",
		Activities: []string{"old"},
		Keywords:   "Ooty1Day",
		Images:     []string{"https://img.example/1.jpg"},
	}
	catalog := []models.DayTemplate{
		{ID: "1", Keyword: "Munnar1Day", Title: "Munnar Arrival", Activities: []string{"Arrival at Kochi"}},
		{ID: "2", Keyword: "Ooty1Day", Title: "T", Activities: []string{"a", "b"}},
	}

	got, err := Resolve(day, catalog)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "T" {
		t.Errorf("title = %q, want %q", got.Title, "T")
	}
	if !reflect.DeepEqual(got.Activities, []string{"a", "b"}) {
		t.Errorf("activities = %v, want [a b]", got.Activities)
	}
	if got.Date != day.Date || !reflect.DeepEqual(got.Images, day.Images) {
		t.Errorf("date/images changed: got %q %v", got.Date, got.Images)
	}
	if got.Day != 2 {
		t.Errorf("day number changed: %d", got.Day)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	day := models.ItineraryDay{Keywords: "ooty1day"}
	catalog := []models.DayTemplate{{Keyword: "Ooty1Day", Title: "T", Activities: []string{"a"}}}

	got, err := Resolve(day, catalog)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "T" {
		t.Errorf("title = %q, want %q", got.Title, "T")
	}
}

func TestResolveUnresolved(t *testing.T) {
	catalog := []models.DayTemplate{{Keyword: "Mysore1Day", Title: "Royal Mysore", Activities: []string{"Palace"}}}

	for _, keyword := range []string{"", "NoSuchKeyword"} {
		day := models.ItineraryDay{Title: "Keep", Activities: []string{"keep"}, Keywords: keyword}
		got, err := Resolve(day, catalog)
		if !errors.Is(err, ErrUnresolved) {
			t.Fatalf("keyword %q: err = %v, want ErrUnresolved", keyword, err)
		}
		if got.Title != "Keep" || !reflect.DeepEqual(got.Activities, []string{"keep"}) {
			t.Errorf("keyword %q: day was modified: %+v", keyword, got)
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	day := models.ItineraryDay{Keywords: "Dup"}
	catalog := []models.DayTemplate{
		{Keyword: "Dup", Title: "First", Activities: []string{"1"}},
		{Keyword: "dup", Title: "Second", Activities: []string{"2"}},
	}

	got, err := Resolve(day, catalog)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Title != "First" {
		t.Errorf("title = %q, want the first catalog match", got.Title)
	}
}
