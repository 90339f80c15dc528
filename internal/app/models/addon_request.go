package models

import (
	"time"

	"wardlab-service/internal/pkg/constvars"
)

// AddOnRequest is one add-on laboratory test request raised against a ward
// patient. Context fields are written once at creation; the lifecycle
// fields below them are owned exclusively by the addon usecase.
type AddOnRequest struct {
	ID                string `bson:"_id,omitempty"`
	WardID            string `bson:"wardId"`
	RoomID            string `bson:"roomId,omitempty"`
	RoomNumber        string `bson:"roomNumber"`
	PatientID         string `bson:"patientId"`
	RequestedTest     string `bson:"requestedTest"`
	Reason            string `bson:"reason"`
	IsUrgent          bool   `bson:"isUrgent"`
	HasPreviousSample bool   `bson:"hasPreviousSample"`
	PreviousSampleID  string `bson:"previousSampleId,omitempty"`
	AdditionalComment string `bson:"additionalComment,omitempty"`
	RequestedBy       string `bson:"requestedBy"`

	Status          string     `bson:"status"`
	ApprovalAction  string     `bson:"approvalAction,omitempty"`
	RejectionReason string     `bson:"rejectionReason,omitempty"`
	ReviewedBy      string     `bson:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `bson:"reviewedAt,omitempty"`
	CompletedAt     *time.Time `bson:"completedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
}

// IsTerminal reports whether no further lifecycle transition is permitted.
func (r *AddOnRequest) IsTerminal() bool {
	return r.Status == constvars.AddonStatusRejected || r.Status == constvars.AddonStatusCompleted
}
