package domain

import "time"

// User models a registered account. The UID is the only identity the rest of
// the system relies on; it is generated once at signup and never changes.
type User struct {
	UID          string    `json:"id" bson:"uid"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	DisplayName  string    `json:"display_name" bson:"display_name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
