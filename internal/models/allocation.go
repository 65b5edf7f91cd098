package models

// DefaultLeaveDays is the annual leave entitlement used when no
// allocation is stored for a staff member.
const DefaultLeaveDays = 28

// LeaveAllocation is an annual leave entitlement in days. A row with
// Year nil is the staff member's standing default; a row with Year set
// overrides it for that year only.
type LeaveAllocation struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	StaffName string `gorm:"not null;index:idx_alloc_staff_year,unique" json:"staff_name"`
	Year      *int   `gorm:"index:idx_alloc_staff_year,unique" json:"year,omitempty"`
	Days      int    `gorm:"not null;check:days >= 0" json:"days"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func (LeaveAllocation) TableName() string {
	return "leave_allocations"
}
