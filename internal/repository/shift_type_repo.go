package repository

import (
	"errors"
	"rota-manager/internal/models"

	"gorm.io/gorm"
)

type ShiftTypeRepository interface {
	CustomShifts() ([]models.CustomShift, error)
	SaveCustom(shift *models.CustomShift) error
	DeleteCustom(code string) error
	HiddenCodes() ([]string, error)
	Hide(code string) error
	Unhide(code string) error
}

type GormShiftTypeRepository struct {
	db *gorm.DB
}

func NewGormShiftTypeRepository(db *gorm.DB) (ShiftTypeRepository, error) {
	if err := db.AutoMigrate(&models.CustomShift{}, &models.HiddenShift{}); err != nil {
		return nil, err
	}
	return &GormShiftTypeRepository{db: db}, nil
}

func (r *GormShiftTypeRepository) CustomShifts() ([]models.CustomShift, error) {
	var shifts []models.CustomShift
	result := r.db.Order("code ASC").Find(&shifts)
	if result.Error != nil {
		return nil, result.Error
	}
	return shifts, nil
}

// SaveCustom inserts or replaces the custom entry for its code.
func (r *GormShiftTypeRepository) SaveCustom(shift *models.CustomShift) error {
	return r.db.Save(shift).Error
}

func (r *GormShiftTypeRepository) DeleteCustom(code string) error {
	result := r.db.Delete(&models.CustomShift{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("custom shift not found")
	}
	return nil
}

func (r *GormShiftTypeRepository) HiddenCodes() ([]string, error) {
	var hidden []models.HiddenShift
	result := r.db.Find(&hidden)
	if result.Error != nil {
		return nil, result.Error
	}

	codes := make([]string, 0, len(hidden))
	for _, h := range hidden {
		codes = append(codes, h.Code)
	}
	return codes, nil
}

func (r *GormShiftTypeRepository) Hide(code string) error {
	var existing models.HiddenShift
	result := r.db.Where("code = ?", code).First(&existing)
	if result.Error == nil {
		return nil // already hidden
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return r.db.Create(&models.HiddenShift{Code: code}).Error
}

func (r *GormShiftTypeRepository) Unhide(code string) error {
	return r.db.Delete(&models.HiddenShift{}, "code = ?", code).Error
}
