// internal/app/store/usersettings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/invtrack/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the settings collection. Each owner has at most
// one document holding their todo-form pick lists.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("settings")}
}

// Get returns the settings for owner. A missing document yields empty
// lists, not an error, so new accounts read as "no saved values yet".
func (s *Store) Get(ctx context.Context, owner string) (models.UserSettings, error) {
	var settings models.UserSettings
	err := s.c.FindOne(ctx, bson.M{"owner_email": owner}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.UserSettings{
			OwnerEmail:     owner,
			InventoryTypes: []string{},
			Locations:      []string{},
			Descriptions:   []string{},
		}, nil
	}
	if err != nil {
		return models.UserSettings{}, err
	}
	// Lists never saved decode as nil; present them as empty.
	if settings.InventoryTypes == nil {
		settings.InventoryTypes = []string{}
	}
	if settings.Locations == nil {
		settings.Locations = []string{}
	}
	if settings.Descriptions == nil {
		settings.Descriptions = []string{}
	}
	return settings, nil
}

// Merge holds replacement values for the pick lists. Nil slices leave the
// stored list untouched; non-nil slices replace it wholesale.
type Merge struct {
	InventoryTypes *[]string
	Locations      *[]string
	Descriptions   *[]string
}

// Upsert writes the lists present in m into owner's document, creating it
// on first save. Values are deduplicated, preserving first occurrence.
func (s *Store) Upsert(ctx context.Context, owner string, m Merge) (models.UserSettings, error) {
	now := time.Now().UTC()
	set := bson.M{"updated_at": now}

	if m.InventoryTypes != nil {
		set["inventory_types"] = dedupe(*m.InventoryTypes)
	}
	if m.Locations != nil {
		set["locations"] = dedupe(*m.Locations)
	}
	if m.Descriptions != nil {
		set["descriptions"] = dedupe(*m.Descriptions)
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID(),
			"owner_email": owner,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, bson.M{"owner_email": owner}, update, opts); err != nil {
		return models.UserSettings{}, err
	}
	return s.Get(ctx, owner)
}

// RemoveValue pulls a single value out of one of owner's lists. Removing a
// value that is not present is a silent no-op.
func (s *Store) RemoveValue(ctx context.Context, owner, field, value string) (models.UserSettings, error) {
	update := bson.M{
		"$pull": bson.M{field: value},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := s.c.UpdateOne(ctx, bson.M{"owner_email": owner}, update); err != nil {
		return models.UserSettings{}, err
	}
	return s.Get(ctx, owner)
}

func dedupe(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
