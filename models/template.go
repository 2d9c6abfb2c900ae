package models

// DayTemplate is a reusable day plan looked up by keyword. Applying a
// template copies its title and activities into a day; no link is kept.
type DayTemplate struct {
	ID         string   `json:"id" bson:"templateid"`
	Keyword    string   `json:"keyword" bson:"keyword"`
	Title      string   `json:"title" bson:"title"`
	Activities []string `json:"activities" bson:"activities"`
}
