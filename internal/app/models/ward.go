package models

type Ward struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	TimeModel `bson:",inline"`
}

type Room struct {
	ID                    string `bson:"_id,omitempty"`
	WardID                string `bson:"wardId"`
	RoomNumber            string `bson:"roomNumber"`
	PatientName           string `bson:"patientName,omitempty"`
	PatientID             string `bson:"patientId,omitempty"`
	PrimaryNurseName      string `bson:"primaryNurseName"`
	PrimaryNurseExtension string `bson:"primaryNurseExtension"`
	BackupNurseName       string `bson:"backupNurseName,omitempty"`
	BackupNurseExtension  string `bson:"backupNurseExtension,omitempty"`
	ChargeNurseName       string `bson:"chargeNurseName,omitempty"`
	Notes                 string `bson:"notes,omitempty"`
	ShiftType             string `bson:"shiftType,omitempty"`
	UpdatedBy             string `bson:"updatedBy,omitempty"`
	TimeModel             `bson:",inline"`
}
