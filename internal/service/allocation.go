package service

import (
	"fmt"
	"strings"

	"rota-manager/internal/models"
	"rota-manager/internal/repository"

	"github.com/sirupsen/logrus"
)

// AllocationService manages annual leave entitlements. Every change
// resyncs the grids so the Annual Leave column reflects the new
// balance.
type AllocationService struct {
	repo   repository.AllocationRepository
	resync func() error
	logger *logrus.Logger
}

func NewAllocationService(repo repository.AllocationRepository) *AllocationService {
	return &AllocationService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// OnChange registers the grid resync step.
func (s *AllocationService) OnChange(resync func() error) {
	s.resync = resync
}

func (s *AllocationService) SetDefault(staffName string, days int) error {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return fmt.Errorf("staff name must not be empty")
	}
	if days < 0 || days > 365 {
		return fmt.Errorf("entitlement must be between 0 and 365 days, got %d", days)
	}

	s.logger.WithFields(logrus.Fields{
		"staff": staffName,
		"days":  days,
	}).Info("Setting leave allocation")

	if err := s.repo.SetDefault(staffName, days); err != nil {
		return err
	}
	return s.triggerResync()
}

func (s *AllocationService) SetForYear(staffName string, year, days int) error {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return fmt.Errorf("staff name must not be empty")
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year must be between 2000 and 2100, got %d", year)
	}
	if days < 0 || days > 365 {
		return fmt.Errorf("entitlement must be between 0 and 365 days, got %d", days)
	}

	s.logger.WithFields(logrus.Fields{
		"staff": staffName,
		"year":  year,
		"days":  days,
	}).Info("Setting leave allocation for year")

	if err := s.repo.SetForYear(staffName, year, days); err != nil {
		return err
	}
	return s.triggerResync()
}

func (s *AllocationService) triggerResync() error {
	if s.resync == nil {
		return nil
	}
	if err := s.resync(); err != nil {
		s.logger.WithError(err).Error("Failed to resync grids after allocation change")
		return fmt.Errorf("allocation saved, but resyncing grids failed: %w", err)
	}
	return nil
}

// FormatAllocation renders one staff member's entitlement for a year.
func (s *AllocationService) FormatAllocation(staffName string, year, days int) string {
	if days == models.DefaultLeaveDays {
		return fmt.Sprintf("📆 %s has the default %d leave days for %d", staffName, days, year)
	}
	return fmt.Sprintf("📆 %s has %d leave days for %d", staffName, days, year)
}
