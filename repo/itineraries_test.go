package repo

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tripforge/models"
	"tripforge/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	r := NewItineraryRepo(nil, NewWatcher())
	err := r.UpdateStatus(context.Background(), "it1", "Archived")
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func toBSON(t *testing.T, it models.Itinerary) bson.D {
	t.Helper()
	raw, err := bson.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return d
}

func TestItineraryRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update status touches only the status field", func(mt *mtest.T) {
		w := NewWatcher()
		r := NewItineraryRepo(mt.Coll, w)
		changes, cancel := w.Subscribe()
		defer cancel()

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		if err := r.UpdateStatus(context.Background(), "it1", models.StatusConverted); err != nil {
			mt.Fatalf("update status: %v", err)
		}

		evt := mt.GetStartedEvent()
		if evt.CommandName != "update" {
			mt.Fatalf("command = %s, want update", evt.CommandName)
		}
		update := evt.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("u").Document()
		elems, err := update.Elements()
		if err != nil {
			mt.Fatalf("read update doc: %v", err)
		}
		if len(elems) != 1 || elems[0].Key() != "$set" {
			mt.Fatalf("update doc = %v, want a single $set", update)
		}
		set, err := update.Lookup("$set").Document().Elements()
		if err != nil {
			mt.Fatalf("read $set: %v", err)
		}
		if len(set) != 1 || set[0].Key() != "status" {
			mt.Fatalf("$set = %v, want status only", set)
		}

		select {
		case <-changes:
		default:
			mt.Fatal("status change should notify subscribers")
		}
	})

	mt.Run("update status of a missing id reports not found", func(mt *mtest.T) {
		r := NewItineraryRepo(mt.Coll, NewWatcher())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := r.UpdateStatus(context.Background(), "ghost", models.StatusLost)
		if !errors.Is(err, mongo.ErrNoDocuments) {
			mt.Fatalf("want ErrNoDocuments, got %v", err)
		}
	})

	mt.Run("upsert replaces the whole document and a get returns it", func(mt *mtest.T) {
		w := NewWatcher()
		r := NewItineraryRepo(mt.Coll, w)
		changes, cancel := w.Subscribe()
		defer cancel()

		doc := models.NewItinerary("it9")
		doc.TripSummary.LeadTraveler = "Asha"
		doc.Status = models.StatusQuoteSent
		doc.Inclusions = []string{"Breakfast", "", "Transfers"}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		if err := r.Upsert(context.Background(), doc); err != nil {
			mt.Fatalf("upsert: %v", err)
		}

		// The write carries the full replacement document, not an
		// operator expression.
		evt := mt.GetStartedEvent()
		replacement := evt.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("u").Document()
		if _, err := replacement.LookupErr("$set"); err == nil {
			mt.Fatal("replacement should not use $set")
		}
		if got := replacement.Lookup("itineraryid").StringValue(); got != "it9" {
			mt.Fatalf("replacement id = %q, want it9", got)
		}

		select {
		case <-changes:
		default:
			mt.Fatal("save should notify subscribers")
		}

		want := doc
		want.Normalize()
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toBSON(mt.T, want)))

		got, err := r.Get(context.Background(), "it9")
		if err != nil {
			mt.Fatalf("get: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			mt.Fatalf("round trip mismatch:\ngot %+v\nwant %+v", got, want)
		}
	})

	mt.Run("get passes through not found", func(mt *mtest.T) {
		r := NewItineraryRepo(mt.Coll, NewWatcher())
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := r.Get(context.Background(), "ghost")
		if !errors.Is(err, mongo.ErrNoDocuments) {
			mt.Fatalf("want ErrNoDocuments, got %v", err)
		}
	})
}
