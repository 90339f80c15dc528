package responses

type Ward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Room struct {
	ID                    string `json:"id"`
	WardID                string `json:"ward_id"`
	WardName              string `json:"ward_name"`
	RoomNumber            string `json:"room_number"`
	PatientName           string `json:"patient_name,omitempty"`
	PatientID             string `json:"patient_id,omitempty"`
	PrimaryNurseName      string `json:"primary_nurse_name"`
	PrimaryNurseExtension string `json:"primary_nurse_extension"`
	BackupNurseName       string `json:"backup_nurse_name,omitempty"`
	BackupNurseExtension  string `json:"backup_nurse_extension,omitempty"`
	ChargeNurseName       string `json:"charge_nurse_name,omitempty"`
	Notes                 string `json:"notes,omitempty"`
	ShiftType             string `json:"shift_type,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

type BulkUpdateRooms struct {
	Updated int `json:"updated"`
	Created int `json:"created"`
}
