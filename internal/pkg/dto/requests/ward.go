package requests

type CreateWard struct {
	Name string `json:"name" validate:"required,max=50"`
}

type RoomUpsert struct {
	ID                    string `json:"id"`
	RoomNumber            string `json:"room_number" validate:"required,max=20"`
	PatientName           string `json:"patient_name"`
	PatientID             string `json:"patient_id"`
	PrimaryNurseName      string `json:"primary_nurse_name" validate:"required,max=100"`
	PrimaryNurseExtension string `json:"primary_nurse_extension" validate:"required,max=20"`
	BackupNurseName       string `json:"backup_nurse_name"`
	BackupNurseExtension  string `json:"backup_nurse_extension"`
	ChargeNurseName       string `json:"charge_nurse_name"`
	Notes                 string `json:"notes"`
	ShiftType             string `json:"shift_type" validate:"omitempty,oneof=day night"`
}

type BulkUpdateRooms struct {
	Rooms []RoomUpsert `json:"rooms" validate:"required,min=1,dive"`

	// UpdatedBy is stamped from the session, never parsed from the body.
	UpdatedBy string `json:"-"`
}

// SearchContacts carries the critical-call lookup filters parsed from the
// query string.
type SearchContacts struct {
	Query      string
	WardID     string
	SearchType string
}
