package models

// ShiftType is one resolved catalog entry: a short uppercase code, the
// paid hours it carries and how it is displayed.
type ShiftType struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Hours  float64 `json:"hours"`
	Color  string  `json:"color"`
	Custom bool    `json:"custom"`
	Hidden bool    `json:"hidden"`
}

// Shift codes the rest of the system depends on by name.
const (
	CodeAnnualLeave = "AL"
	CodeSick        = "SICK"
	CodeTraining    = "TRAINING"
	CodeOff         = "OFF"
)

// Builtins returns the fixed built-in catalog. Built-ins can be hidden
// but never deleted.
func Builtins() []ShiftType {
	return []ShiftType{
		{Code: "EARLY", Label: "Early Shift", Hours: 7.5, Color: "#A8D8EA"},
		{Code: "LATE", Label: "Late Shift", Hours: 7.5, Color: "#AA96DA"},
		{Code: "NIGHT", Label: "Night Shift", Hours: 11, Color: "#3F72AF"},
		{Code: "DAY", Label: "Day Shift", Hours: 7.5, Color: "#FCBAD3"},
		{Code: "OFF", Label: "Day Off", Hours: 0, Color: "#EEEEEE"},
		{Code: "AL", Label: "Annual Leave", Hours: 7.5, Color: "#B5EAD7"},
		{Code: "SICK", Label: "Sick Leave", Hours: 0, Color: "#FFDAC1"},
		{Code: "TRAINING", Label: "Training", Hours: 7.5, Color: "#FFF5BA"},
	}
}

// CustomShift is a user-defined catalog entry. Always visible.
type CustomShift struct {
	Code      string  `gorm:"primaryKey;type:varchar(10)" json:"code"`
	Label     string  `gorm:"not null" json:"label"`
	Hours     float64 `gorm:"not null;default:0;check:hours >= 0" json:"hours"`
	Color     string  `gorm:"type:varchar(10)" json:"color"`
	CreatedAt int64   `json:"created_at"`
}

func (CustomShift) TableName() string {
	return "custom_shifts"
}

// HiddenShift marks a built-in code as hidden from the resolved catalog.
type HiddenShift struct {
	Code      string `gorm:"primaryKey;type:varchar(10)" json:"code"`
	CreatedAt int64  `json:"created_at"`
}

func (HiddenShift) TableName() string {
	return "hidden_shifts"
}
