package domain

import "time"

// Lifecycle carries the soft-delete state shared by every managed record.
// DeletedAt and DeletedBy are always set and cleared together; a record with
// Deleted unset is active.
type Lifecycle struct {
	Deleted   bool       `json:"deleted" bson:"deleted"`
	DeletedAt *time.Time `json:"deletedAt" bson:"deleted_at,omitempty"`
	DeletedBy *string    `json:"deletedBy" bson:"deleted_by,omitempty"`
}

// Active reports whether the record has not been soft-deleted.
func (l *Lifecycle) Active() bool {
	return !l.Deleted
}

// MarkDeleted stamps the record as soft-deleted by actor. Calling it on an
// already deleted record re-stamps the timestamp and actor.
func (l *Lifecycle) MarkDeleted(actor string, at time.Time) {
	l.Deleted = true
	l.DeletedAt = &at
	l.DeletedBy = &actor
}

// ClearDeleted returns the record to the active state. Calling it on an
// active record is a no-op.
func (l *Lifecycle) ClearDeleted() {
	l.Deleted = false
	l.DeletedAt = nil
	l.DeletedBy = nil
}

// Resource is implemented by every record managed through the shared
// lifecycle service: suppliers, hotels, payments and users.
type Resource interface {
	ResourceID() string
	SetResourceID(id string)
	DisplayName() string
	Meta() *Lifecycle
	StampCreated(at time.Time)
	CreatedTime() time.Time
}
