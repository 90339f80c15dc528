package models

import "time"

// AddOnLogEntry is one immutable audit record of a lifecycle action. The
// collection is append-only; no code path updates or deletes entries.
type AddOnLogEntry struct {
	ID          string    `bson:"_id,omitempty"`
	RequestID   string    `bson:"requestId"`
	Action      string    `bson:"action"`
	PerformedBy string    `bson:"performedBy"`
	Timestamp   time.Time `bson:"timestamp"`
	Notes       string    `bson:"notes,omitempty"`
}
