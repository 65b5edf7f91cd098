package repository

import (
	"errors"
	"rota-manager/internal/models"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(member *models.StaffMember) error
	GetByName(name string) (*models.StaffMember, error)
	GetAll() ([]*models.StaffMember, error)
	Delete(name string) error
	Exists(name string) (bool, error)
}

type GormStaffRepository struct {
	db *gorm.DB
}

func NewGormStaffRepository(db *gorm.DB) (StaffRepository, error) {
	if err := db.AutoMigrate(&models.StaffMember{}); err != nil {
		return nil, err
	}
	return &GormStaffRepository{db: db}, nil
}

func (r *GormStaffRepository) Create(member *models.StaffMember) error {
	existing, err := r.GetByName(member.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("staff member already exists")
	}
	return r.db.Create(member).Error
}

// GetByName matches case-insensitively, the way the merged directory
// compares names.
func (r *GormStaffRepository) GetByName(name string) (*models.StaffMember, error) {
	var member models.StaffMember
	result := r.db.Where("name = ? COLLATE NOCASE", name).First(&member)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &member, nil
}

func (r *GormStaffRepository) GetAll() ([]*models.StaffMember, error) {
	var members []*models.StaffMember
	result := r.db.Order("id ASC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *GormStaffRepository) Delete(name string) error {
	result := r.db.Where("name = ? COLLATE NOCASE", name).Delete(&models.StaffMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("staff member not found")
	}
	return nil
}

func (r *GormStaffRepository) Exists(name string) (bool, error) {
	var count int64
	result := r.db.Model(&models.StaffMember{}).
		Where("name = ? COLLATE NOCASE", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
