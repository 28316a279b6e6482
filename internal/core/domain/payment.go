package domain

import (
	"encoding/json"
	"time"
)

// PaymentStatus values mirror what the dashboard filters on.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// Payment records a single payment made to a supplier for a hotel.
//
// Reservations is an ordered list of free-text reservation references. It is
// persisted as a JSON array serialized into a single string column so the
// schema stays portable across storage engines; the repository converts
// through EncodeReservations/DecodeReservations at the boundary.
type Payment struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	SupplierID      string    `json:"supplierId" bson:"supplier_id" validate:"required"`
	HotelID         string    `json:"hotelId" bson:"hotel_id" validate:"required"`
	Amount          float64   `json:"amount" bson:"amount"`
	Currency        string    `json:"currency" bson:"currency"`
	Date            string    `json:"date" bson:"date"`
	Description     string    `json:"description" bson:"description"`
	Status          string    `json:"status" bson:"status"`
	DueDate         string    `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	Method          string    `json:"method" bson:"method"`
	BankName        string    `json:"bankName,omitempty" bson:"bank_name,omitempty"`
	ServiceType     string    `json:"serviceType,omitempty" bson:"service_type,omitempty"`
	RealizationYear int       `json:"realizationYear,omitempty" bson:"realization_year,omitempty"`
	Reservations    []string  `json:"reservations" bson:"-"`
	ReservationsRaw string    `json:"-" bson:"reservations"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`

	Lifecycle `bson:",inline"`
}

func (p *Payment) ResourceID() string        { return p.ID }
func (p *Payment) SetResourceID(id string)   { p.ID = id }
func (p *Payment) DisplayName() string       { return p.Description }
func (p *Payment) Meta() *Lifecycle          { return &p.Lifecycle }
func (p *Payment) StampCreated(at time.Time) { p.CreatedAt = at }
func (p *Payment) CreatedTime() time.Time    { return p.CreatedAt }

// EncodeReservations serializes the ordered reservation list for storage.
// A nil list encodes as the empty JSON array.
func EncodeReservations(reservations []string) (string, error) {
	if reservations == nil {
		reservations = []string{}
	}
	raw, err := json.Marshal(reservations)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeReservations is the inverse of EncodeReservations. Empty or missing
// stored values decode to the empty list rather than an error.
func DecodeReservations(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var reservations []string
	if err := json.Unmarshal([]byte(raw), &reservations); err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []string{}
	}
	return reservations, nil
}
