package models

import "time"

// Absence categories accepted at the boundary. Anything else maps to a
// plain day off.
const (
	AbsenceAnnualLeave = "Annual Leave"
	AbsenceSickLeave   = "Sick Leave"
	AbsenceTraining    = "Training"
)

// AbsenceRecord is one logged absence. The log is append-only: grids
// are written from it, never reconciled back.
type AbsenceRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StaffName string    `gorm:"not null;index" json:"staff_name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Days      int       `gorm:"not null;default:0" json:"days"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (AbsenceRecord) TableName() string {
	return "absence_records"
}

// ShiftCode maps the absence category to the code written into grid
// cells.
func (a *AbsenceRecord) ShiftCode() string {
	switch a.Type {
	case AbsenceAnnualLeave:
		return CodeAnnualLeave
	case AbsenceSickLeave:
		return CodeSick
	case AbsenceTraining:
		return CodeTraining
	default:
		return CodeOff
	}
}

// IsValid checks the date range and staff name.
func (a *AbsenceRecord) IsValid() bool {
	if a.StaffName == "" {
		return false
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return false
	}
	return !a.EndDate.Before(a.StartDate)
}
