package repository

import (
	"rota-manager/internal/models"

	"gorm.io/gorm"
)

type AbsenceRepository interface {
	Create(record *models.AbsenceRecord) error
	GetByStaffName(staffName string) ([]models.AbsenceRecord, error)
	GetAll() ([]models.AbsenceRecord, error)
}

type GormAbsenceRepository struct {
	db *gorm.DB
}

func NewGormAbsenceRepository(db *gorm.DB) (AbsenceRepository, error) {
	if err := db.AutoMigrate(&models.AbsenceRecord{}); err != nil {
		return nil, err
	}
	return &GormAbsenceRepository{db: db}, nil
}

func (r *GormAbsenceRepository) Create(record *models.AbsenceRecord) error {
	return r.db.Create(record).Error
}

func (r *GormAbsenceRepository) GetByStaffName(staffName string) ([]models.AbsenceRecord, error) {
	var records []models.AbsenceRecord
	err := r.db.Where("staff_name = ? COLLATE NOCASE", staffName).
		Order("start_date DESC").
		Find(&records).Error
	return records, err
}

func (r *GormAbsenceRepository) GetAll() ([]models.AbsenceRecord, error) {
	var records []models.AbsenceRecord
	err := r.db.Order("start_date DESC").Find(&records).Error
	return records, err
}
