package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Admin privilege is an explicit claim on the identity record,
// checked server-side on every privileged call.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// RolePasswordReset marks short-lived reset tokens. Tokens carrying it
	// are not valid bearer credentials.
	RolePasswordReset = "password-reset"
)

// User represents a registered donor account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"userId,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	Age       int                `bson:"age,omitempty" json:"age,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
