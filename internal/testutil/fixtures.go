package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/invtrack/internal/app/system/authutil"
	"github.com/dalemusser/invtrack/internal/app/system/normalize"
	"github.com/dalemusser/invtrack/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an account with the given credentials and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, email, password string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTodo inserts a task for owner with the given name and creation
// time. Explicit createdAt lets date-range tests pin the clock.
func (f *Fixtures) CreateTodo(ctx context.Context, owner, modalName string, createdAt time.Time) models.Todo {
	f.t.Helper()

	todo := models.Todo{
		ID:            primitive.NewObjectID(),
		OwnerEmail:    owner,
		InventoryType: "Tools",
		ModalName:     modalName,
		ModalNameCI:   text.Fold(modalName),
		Location:      "Warehouse A",
		SubLocation:   "Shelf 1",
		Description:   "Needs Repair",
		CreatedAt:     createdAt.UTC(),
	}

	if _, err := f.db.Collection("todos").InsertOne(ctx, todo); err != nil {
		f.t.Fatalf("failed to create test todo: %v", err)
	}
	return todo
}

// CreateSettings inserts a settings document for owner.
func (f *Fixtures) CreateSettings(ctx context.Context, owner string, inventoryTypes, locations, descriptions []string) models.UserSettings {
	f.t.Helper()

	now := time.Now().UTC()
	settings := models.UserSettings{
		ID:             primitive.NewObjectID(),
		OwnerEmail:     owner,
		InventoryTypes: inventoryTypes,
		Locations:      locations,
		Descriptions:   descriptions,
		UpdatedAt:      &now,
	}

	if _, err := f.db.Collection("settings").InsertOne(ctx, settings); err != nil {
		f.t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}
