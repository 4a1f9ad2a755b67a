// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that owns todos and settings. Email is the unique
// login identifier and the scoping key for every owned record.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`

	// Membership fields. Unclaimed accounts have PrimeMembership=false and
	// nil claim/expiry timestamps.
	PrimeMembership     bool       `bson:"prime_membership" json:"primeMembership"`
	MembershipType      string     `bson:"membership_type,omitempty" json:"membershipType,omitempty"`
	MembershipExpiresAt *time.Time `bson:"membership_expires_at,omitempty" json:"membershipExpiresAt,omitempty"`
	MembershipClaimedAt *time.Time `bson:"membership_claimed_at,omitempty" json:"membershipClaimedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DefaultMembershipType is the promotion applied when a user claims membership.
const DefaultMembershipType = "durga-puja-offer"

// MembershipDuration is how long a claimed membership lasts.
const MembershipDuration = 6 // months
