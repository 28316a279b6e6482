package domain

import "time"

// ActionKind is the closed set of auditable actions. The persisted Action
// field on an entry carries the human-readable label, not the kind itself, so
// existing log rows stay meaningful to operators.
type ActionKind string

const (
	ActionCreate     ActionKind = "create"
	ActionUpdate     ActionKind = "update"
	ActionSoftDelete ActionKind = "soft_delete"
	ActionRestore    ActionKind = "restore"
	ActionHardDelete ActionKind = "hard_delete"
	ActionLogin      ActionKind = "login"
	ActionImport     ActionKind = "import"
	ActionExport     ActionKind = "export"
)

// Label returns the display form written into the activity log.
func (k ActionKind) Label() string {
	switch k {
	case ActionCreate:
		return "Kreirao"
	case ActionUpdate:
		return "Izmenio"
	case ActionSoftDelete:
		return "Obrisao"
	case ActionRestore:
		return "Vratio"
	case ActionHardDelete:
		return "Trajno obrisao"
	case ActionLogin:
		return "Prijava"
	case ActionImport:
		return "Uvezao podatke"
	case ActionExport:
		return "Izvozio podatke"
	default:
		return string(k)
	}
}

// ActivityEntry is one append-only audit record. Entries are never updated or
// deleted by the system; listing returns them newest first.
type ActivityEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Action    string    `json:"action" bson:"action"`
	Details   string    `json:"details" bson:"details"`
	User      string    `json:"user" bson:"user"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
