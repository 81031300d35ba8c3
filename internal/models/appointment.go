package models

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Appointment is a booked visa-interview slot together with the applicant's
// medical-exam date. Dates and timestamps are kept as text.
type Appointment struct {
	ID                  string `gorm:"primaryKey;size:36" json:"id"`
	ApplicantName       string `gorm:"type:text;not null" json:"applicant_name"`
	Email               string `gorm:"type:text;not null" json:"email"`
	PassportNumber      string `gorm:"type:text;not null" json:"passport_number"`
	PhoneNumber         string `gorm:"type:text" json:"phone_number"`
	AppointmentDate     string `gorm:"type:text;not null" json:"appointment_date"`
	AppointmentTime     string `gorm:"type:text;not null" json:"appointment_time"`
	MedicalExamDate     string `gorm:"type:text;not null" json:"medical_exam_date"`
	MedicalExamVerified bool   `gorm:"default:false" json:"medical_exam_verified"`
	Status              string `gorm:"type:text;default:'pending'" json:"status"`
	CreatedAt           string `gorm:"column:created_at;type:text" json:"created_at"`
	UpdatedAt           string `gorm:"column:updated_at;type:text" json:"updated_at"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
