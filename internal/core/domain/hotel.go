package domain

import "time"

// Hotel is a property on whose behalf supplier payments are made.
type Hotel struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name" validate:"required"`
	City          string    `json:"city" bson:"city"`
	Country       string    `json:"country" bson:"country"`
	Rooms         int       `json:"rooms" bson:"rooms"`
	Phone         string    `json:"phone" bson:"phone"`
	Manager       string    `json:"manager" bson:"manager"`
	ContactPerson string    `json:"contactPerson,omitempty" bson:"contact_person,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty" bson:"longitude,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`

	Lifecycle `bson:",inline"`
}

func (h *Hotel) ResourceID() string        { return h.ID }
func (h *Hotel) SetResourceID(id string)   { h.ID = id }
func (h *Hotel) DisplayName() string       { return h.Name }
func (h *Hotel) Meta() *Lifecycle          { return &h.Lifecycle }
func (h *Hotel) StampCreated(at time.Time) { h.CreatedAt = at }
func (h *Hotel) CreatedTime() time.Time    { return h.CreatedAt }
