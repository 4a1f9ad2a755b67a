package todostore

import (
	"context"
	"regexp"
	"time"

	"github.com/dalemusser/invtrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("todos")}
}

// Filter narrows a List call. Zero-value fields are ignored.
type Filter struct {
	// ModalName matches as a case-insensitive substring of the stored name.
	ModalName string

	// CreatedAtStart and CreatedAtEnd bound the creation date. Both ends
	// are inclusive; the end bound covers the whole final day.
	CreatedAtStart *time.Time
	CreatedAtEnd   *time.Time
}

// Create inserts a task for owner. The server owns the id, creation time,
// and completion flag regardless of what the client sent.
func (s *Store) Create(ctx context.Context, owner string, t models.Todo) (models.Todo, error) {
	t.ID = primitive.NewObjectID()
	t.OwnerEmail = owner
	t.ModalNameCI = text.Fold(t.ModalName)
	t.Completed = false
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

// List returns owner's tasks matching f, newest first. The result is never
// nil so an empty list serializes as [].
func (s *Store) List(ctx context.Context, owner string, f Filter) ([]models.Todo, error) {
	filter := bson.M{"owner_email": owner}

	if f.ModalName != "" {
		filter["modal_name_ci"] = bson.M{"$regex": regexp.QuoteMeta(text.Fold(f.ModalName))}
	}

	created := bson.M{}
	if f.CreatedAtStart != nil {
		created["$gte"] = f.CreatedAtStart.UTC()
	}
	if f.CreatedAtEnd != nil {
		// End-inclusive: anything before the start of the following day.
		created["$lt"] = f.CreatedAtEnd.UTC().Add(24 * time.Hour)
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	todos := []models.Todo{}
	if err := cur.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID fetches one of owner's tasks. Returns mongo.ErrNoDocuments when
// the id does not exist or belongs to someone else.
func (s *Store) GetByID(ctx context.Context, owner string, id primitive.ObjectID) (*models.Todo, error) {
	var t models.Todo
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "owner_email": owner}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update holds the mutable task fields. Nil pointers leave the stored value
// untouched.
type Update struct {
	InventoryType     *string
	ModalName         *string
	Location          *string
	SubLocation       *string
	Description       *string
	CustomDescription *string
	Image             *string
	Completed         *bool
}

// Update applies upd to one of owner's tasks. The owner filter makes a
// cross-tenant id a no-op; matched reports whether anything was found.
func (s *Store) Update(ctx context.Context, owner string, id primitive.ObjectID, upd Update) (matched bool, err error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if upd.InventoryType != nil {
		set["inventory_type"] = *upd.InventoryType
	}
	if upd.ModalName != nil {
		set["modal_name"] = *upd.ModalName
		set["modal_name_ci"] = text.Fold(*upd.ModalName)
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.SubLocation != nil {
		set["sub_location"] = *upd.SubLocation
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.CustomDescription != nil {
		set["custom_description"] = *upd.CustomDescription
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Completed != nil {
		set["completed"] = *upd.Completed
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "owner_email": owner},
		bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes one of owner's tasks. Deleting a missing or foreign id is
// a silent no-op; the count is 0 or 1.
func (s *Store) Delete(ctx context.Context, owner string, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "owner_email": owner})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteMany removes a batch of owner's tasks and returns how many actually
// went away. Ids that do not exist or belong to someone else are skipped.
func (s *Store) DeleteMany(ctx context.Context, owner string, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := s.c.DeleteMany(ctx, bson.M{
		"_id":         bson.M{"$in": ids},
		"owner_email": owner,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
