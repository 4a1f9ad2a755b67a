// internal/domain/models/todo.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todo is a single inventory task owned by exactly one user. OwnerEmail is
// written at creation time from the verified caller identity and every read,
// update, and delete filters on it.
type Todo struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerEmail string             `bson:"owner_email" json:"-"`

	InventoryType     string `bson:"inventory_type" json:"inventoryType"`
	ModalName         string `bson:"modal_name" json:"modalName"`
	ModalNameCI       string `bson:"modal_name_ci" json:"-"` // lowercase, diacritics-stripped
	Location          string `bson:"location" json:"location"`
	SubLocation       string `bson:"sub_location" json:"subLocation"`
	Description       string `bson:"description" json:"description"`
	CustomDescription string `bson:"custom_description,omitempty" json:"customDescription,omitempty"`

	// Image is an optional data: URL with a base64-encoded photo, capped at
	// 1 MiB decoded. Validated at the handler boundary before storage.
	Image string `bson:"image,omitempty" json:"image,omitempty"`

	Completed bool       `bson:"completed" json:"completed"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
