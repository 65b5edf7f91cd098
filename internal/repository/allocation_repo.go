package repository

import (
	"errors"
	"rota-manager/internal/models"

	"gorm.io/gorm"
)

type AllocationRepository interface {
	GetDefault(staffName string) (*models.LeaveAllocation, error)
	GetForYear(staffName string, year int) (*models.LeaveAllocation, error)
	SetDefault(staffName string, days int) error
	SetForYear(staffName string, year, days int) error
}

type GormAllocationRepository struct {
	db *gorm.DB
}

func NewGormAllocationRepository(db *gorm.DB) (AllocationRepository, error) {
	if err := db.AutoMigrate(&models.LeaveAllocation{}); err != nil {
		return nil, err
	}
	return &GormAllocationRepository{db: db}, nil
}

// GetDefault returns the staff member's standing allocation (the row
// without a year), or nil if none is stored.
func (r *GormAllocationRepository) GetDefault(staffName string) (*models.LeaveAllocation, error) {
	var alloc models.LeaveAllocation
	result := r.db.Where("staff_name = ? COLLATE NOCASE AND year IS NULL", staffName).
		First(&alloc)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &alloc, nil
}

func (r *GormAllocationRepository) GetForYear(staffName string, year int) (*models.LeaveAllocation, error) {
	var alloc models.LeaveAllocation
	result := r.db.Where("staff_name = ? COLLATE NOCASE AND year = ?", staffName, year).
		First(&alloc)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &alloc, nil
}

func (r *GormAllocationRepository) SetDefault(staffName string, days int) error {
	existing, err := r.GetDefault(staffName)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Days = days
		return r.db.Save(existing).Error
	}
	return r.db.Create(&models.LeaveAllocation{StaffName: staffName, Days: days}).Error
}

func (r *GormAllocationRepository) SetForYear(staffName string, year, days int) error {
	existing, err := r.GetForYear(staffName, year)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Days = days
		return r.db.Save(existing).Error
	}
	return r.db.Create(&models.LeaveAllocation{StaffName: staffName, Year: &year, Days: days}).Error
}
