package domain

import "time"

// User is a back-office account. PasswordDigest is only ever set through the
// bcrypt hashing primitive and never leaves the server.
type User struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Name           string     `json:"name" bson:"name" validate:"required"`
	Email          string     `json:"email" bson:"email" validate:"required,email"`
	PasswordDigest string     `json:"-" bson:"password_digest,omitempty"`
	Role           Role       `json:"role" bson:"role"`
	LastLogin      *time.Time `json:"lastLogin" bson:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`

	Lifecycle `bson:",inline"`
}

func (u *User) ResourceID() string        { return u.ID }
func (u *User) SetResourceID(id string)   { u.ID = id }
func (u *User) DisplayName() string       { return u.Name }
func (u *User) Meta() *Lifecycle          { return &u.Lifecycle }
func (u *User) StampCreated(at time.Time) { u.CreatedAt = at }
func (u *User) CreatedTime() time.Time    { return u.CreatedAt }

// Principal is the authenticated identity attached to each request. It is
// rebuilt from the verified session token on every call and never persisted.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
