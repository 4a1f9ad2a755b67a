// internal/domain/models/usersettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettings holds the per-user pick lists for todo form fields.
// One document per owner_email (upsert semantics). List membership is
// set-like: no duplicate values.
type UserSettings struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerEmail string             `bson:"owner_email" json:"-"`

	InventoryTypes []string `bson:"inventory_types" json:"inventoryTypes"`
	Locations      []string `bson:"locations" json:"locations"`
	Descriptions   []string `bson:"descriptions" json:"descriptions"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"-"`
}

// settingsFields maps the JSON list names clients use to the stored
// bson field names.
var settingsFields = map[string]string{
	"inventoryTypes": "inventory_types",
	"locations":      "locations",
	"descriptions":   "descriptions",
}

// SettingsField resolves a client-facing list name to its bson field.
// The second return is false for unknown names.
func SettingsField(key string) (string, bool) {
	f, ok := settingsFields[key]
	return f, ok
}
