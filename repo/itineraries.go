package repo

import (
	"context"
	"fmt"

	"tripforge/models"
	"tripforge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ItineraryRepo persists quotation documents keyed by itinerary id.
// Handlers receive an injected instance rather than touching collections
// directly.
type ItineraryRepo struct {
	coll    *mongo.Collection
	watcher *Watcher
}

func NewItineraryRepo(coll *mongo.Collection, w *Watcher) *ItineraryRepo {
	return &ItineraryRepo{coll: coll, watcher: w}
}

// List returns all itineraries ordered by quotation date, newest first.
// The same sort field is used for every snapshot a subscriber sees.
func (r *ItineraryRepo) List(ctx context.Context) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "trip_summary.quotation_date", Value: -1}})
	items, err := utils.FindAndDecode[models.Itinerary](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list itineraries: %v", utils.ErrPersistence, err)
	}
	if items == nil {
		items = []models.Itinerary{}
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, nil
}

func (r *ItineraryRepo) Get(ctx context.Context, id string) (models.Itinerary, error) {
	var it models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&it)
	if err == mongo.ErrNoDocuments {
		return it, err
	}
	if err != nil {
		return it, fmt.Errorf("%w: get itinerary: %v", utils.ErrPersistence, err)
	}
	it.Normalize()
	return it, nil
}

// Upsert writes the whole document: created if the id is new, fully
// replaced otherwise.
func (r *ItineraryRepo) Upsert(ctx context.Context, it models.Itinerary) error {
	it.Normalize()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"itineraryid": it.ID}, it, opts); err != nil {
		return fmt.Errorf("%w: save itinerary %s: %v", utils.ErrPersistence, it.ID, err)
	}
	r.watcher.Notify()
	return nil
}

// Delete removes a document. Deleting a missing id is not an error.
func (r *ItineraryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"itineraryid": id}); err != nil {
		return fmt.Errorf("%w: delete itinerary %s: %v", utils.ErrPersistence, id, err)
	}
	r.watcher.Notify()
	return nil
}

// UpdateStatus touches only the status field so concurrent dashboard
// status edits cannot clobber a full save from the editor.
func (r *ItineraryRepo) UpdateStatus(ctx context.Context, id string, status models.ItineraryStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", utils.ErrValidation, status)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"itineraryid": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("%w: update status of %s: %v", utils.ErrPersistence, id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	r.watcher.Notify()
	return nil
}

// Subscribe delivers a ping on every itinerary mutation. Callers re-read
// List and must call cancel when done.
func (r *ItineraryRepo) Subscribe() (<-chan struct{}, func()) {
	return r.watcher.Subscribe()
}
