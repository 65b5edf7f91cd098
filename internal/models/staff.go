package models

import "strings"

// StaffMember is one entry of the persisted staff list. Insertion
// order is the display order.
type StaffMember struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null;uniqueIndex" json:"name"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}

// Staff entry sources for the merged directory.
const (
	StaffSourceList  = "list"
	StaffSourceSheet = "sheet"
)

// StaffEntry is one name of the merged staff directory, tagged with
// where it came from.
type StaffEntry struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Source string `json:"source"`
}

// SameName compares staff names the way the merged directory does:
// trimmed and case-insensitive.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
