package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account represents a registered user account.
type Account struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	FirstName        string        `bson:"first_name"`
	LastName         string        `bson:"last_name"`
	DateOfBirth      string        `bson:"date_of_birth"`
	Email            string        `bson:"email"`
	PasswordHash     string        `bson:"password_hash"`
	Active           bool          `bson:"active"`
	Admin            bool          `bson:"admin"`
	Staff            bool          `bson:"staff"`
	Verified         bool          `bson:"verified"`
	VerificationCode string        `bson:"verification_code"`
	CreatedAt        time.Time     `bson:"created_at"`
	UpdatedAt        time.Time     `bson:"updated_at"`
}
