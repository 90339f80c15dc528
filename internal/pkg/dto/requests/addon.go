package requests

// CreateAddonRequest carries the immutable context of a new add-on request.
// The requester identity comes from the session, never from the payload.
type CreateAddonRequest struct {
	WardID            string `json:"ward_id" validate:"required"`
	RoomID            string `json:"room_id"`
	RoomNumber        string `json:"room_number" validate:"required,max=20"`
	PatientID         string `json:"patient_id" validate:"required,max=50"`
	RequestedTest     string `json:"requested_test" validate:"required,max=200"`
	Reason            string `json:"reason" validate:"required"`
	IsUrgent          bool   `json:"is_urgent"`
	HasPreviousSample bool   `json:"has_previous_sample"`
	PreviousSampleID  string `json:"previous_sample_id" validate:"max=50"`
	AdditionalComment string `json:"additional_comment"`
}

type ApproveAddonRequest struct {
	Action string `json:"action" validate:"required,oneof=add_to_same_sample need_new_sample"`
}

type RejectAddonRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ListAddonRequests carries the optional list filters.
type ListAddonRequests struct {
	Status string `validate:"omitempty,oneof=pending approved rejected completed"`
	WardID string
}
