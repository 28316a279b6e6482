package domain

import "time"

// Supplier is a hospitality supplier that receives payments.
type Supplier struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name" validate:"required"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	Address       string    `json:"address" bson:"address"`
	BankAccount   string    `json:"bankAccount" bson:"bank_account"`
	ContactPerson string    `json:"contactPerson,omitempty" bson:"contact_person,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Country       string    `json:"country,omitempty" bson:"country,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`

	Lifecycle `bson:",inline"`
}

func (s *Supplier) ResourceID() string          { return s.ID }
func (s *Supplier) SetResourceID(id string)     { s.ID = id }
func (s *Supplier) DisplayName() string         { return s.Name }
func (s *Supplier) Meta() *Lifecycle            { return &s.Lifecycle }
func (s *Supplier) StampCreated(at time.Time)   { s.CreatedAt = at }
func (s *Supplier) CreatedTime() time.Time      { return s.CreatedAt }
