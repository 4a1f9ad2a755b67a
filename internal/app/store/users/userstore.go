package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/invtrack/internal/app/system/authutil"
	"github.com/dalemusser/invtrack/internal/app/system/normalize"
	"github.com/dalemusser/invtrack/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not distinguish between them.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned when a lookup matches no user.
	ErrNotFound = errors.New("user not found")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create registers a new account. The password is hashed here; the plaintext
// never reaches the collection.
func (s *Store) Create(ctx context.Context, email, password string) (models.User, error) {
	hash, err := authutil.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail looks up a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// VerifyPassword checks a credential pair and returns the account on
// success. The unknown-email path burns a hash comparison so its timing
// matches the wrong-password path.
func (s *Store) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err == ErrNotFound {
		authutil.CompareDummy(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !authutil.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// ClaimResult reports whether a membership claim changed anything.
type ClaimResult struct {
	AlreadyMember bool
	User          *models.User
}

// ClaimMembership activates the promotional membership on an account. The
// filter requires prime_membership=false so a repeated claim matches nothing
// and leaves the original expiry untouched.
func (s *Store) ClaimMembership(ctx context.Context, email string) (ClaimResult, error) {
	now := time.Now().UTC()
	expires := now.AddDate(0, models.MembershipDuration, 0)

	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email), "prime_membership": false},
		bson.M{"$set": bson.M{
			"prime_membership":      true,
			"membership_type":       models.DefaultMembershipType,
			"membership_claimed_at": now,
			"membership_expires_at": expires,
			"updated_at":            now,
		}})
	if err != nil {
		return ClaimResult{}, err
	}

	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{AlreadyMember: res.ModifiedCount == 0, User: u}, nil
}
