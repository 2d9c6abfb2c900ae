package repo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"tripforge/models"
	"tripforge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateRepo persists day templates keyed by template id. Keywords are
// the effective lookup key, so duplicates are rejected on save instead of
// letting lookups pick an arbitrary winner.
type TemplateRepo struct {
	coll    *mongo.Collection
	watcher *Watcher
}

func NewTemplateRepo(coll *mongo.Collection, w *Watcher) *TemplateRepo {
	return &TemplateRepo{coll: coll, watcher: w}
}

// List returns all templates ordered by keyword ascending.
func (r *TemplateRepo) List(ctx context.Context) ([]models.DayTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "keyword", Value: 1}})
	items, err := utils.FindAndDecode[models.DayTemplate](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list templates: %v", utils.ErrPersistence, err)
	}
	if items == nil {
		items = []models.DayTemplate{}
	}
	return items, nil
}

func (r *TemplateRepo) Upsert(ctx context.Context, t models.DayTemplate) error {
	t.Keyword = strings.TrimSpace(t.Keyword)
	if t.Keyword == "" || t.Title == "" {
		return fmt.Errorf("%w: template keyword and title are required", utils.ErrValidation)
	}
	if t.Activities == nil {
		t.Activities = []string{}
	}

	// Case-insensitive exact match against every other template.
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(t.Keyword) + "$", Options: "i"}
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"keyword":    pattern,
		"templateid": bson.M{"$ne": t.ID},
	})
	if err != nil {
		return fmt.Errorf("%w: check keyword %q: %v", utils.ErrPersistence, t.Keyword, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: a template with keyword %q already exists", utils.ErrValidation, t.Keyword)
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"templateid": t.ID}, t, opts); err != nil {
		return fmt.Errorf("%w: save template %s: %v", utils.ErrPersistence, t.ID, err)
	}
	r.watcher.Notify()
	return nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"templateid": id}); err != nil {
		return fmt.Errorf("%w: delete template %s: %v", utils.ErrPersistence, id, err)
	}
	r.watcher.Notify()
	return nil
}

func (r *TemplateRepo) Subscribe() (<-chan struct{}, func()) {
	return r.watcher.Subscribe()
}
