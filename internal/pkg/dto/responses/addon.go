package responses

type AddonRequest struct {
	ID                string `json:"id"`
	WardID            string `json:"ward_id"`
	WardName          string `json:"ward_name,omitempty"`
	RoomID            string `json:"room_id,omitempty"`
	RoomNumber        string `json:"room_number"`
	PatientID         string `json:"patient_id"`
	RequestedTest     string `json:"requested_test"`
	Reason            string `json:"reason"`
	IsUrgent          bool   `json:"is_urgent"`
	HasPreviousSample bool   `json:"has_previous_sample"`
	PreviousSampleID  string `json:"previous_sample_id,omitempty"`
	AdditionalComment string `json:"additional_comment,omitempty"`
	Status            string `json:"status"`
	RejectionReason   string `json:"rejection_reason,omitempty"`
	ApprovalAction    string `json:"approval_action,omitempty"`
	RequestedBy       string `json:"requested_by"`
	RequesterName     string `json:"requester_name,omitempty"`
	ReviewedBy        string `json:"reviewed_by,omitempty"`
	ReviewerName      string `json:"reviewer_name,omitempty"`
	CreatedAt         string `json:"created_at"`
	ReviewedAt        string `json:"reviewed_at,omitempty"`
	CompletedAt       string `json:"completed_at,omitempty"`
}

type AddonLogEntry struct {
	ID          string `json:"id"`
	RequestID   string `json:"request_id"`
	Action      string `json:"action"`
	PerformedBy string `json:"performed_by"`
	Timestamp   string `json:"timestamp"`
	Notes       string `json:"notes,omitempty"`
}
