package service

import (
	"fmt"
	"strings"
	"time"

	"rota-manager/internal/grid"
	"rota-manager/internal/models"
	"rota-manager/internal/repository"

	"github.com/sirupsen/logrus"
)

// StaffService merges staff identities from the persisted list and
// from whatever rows the current month's grid already holds.
type StaffService struct {
	repo   repository.StaffRepository
	grids  grid.Store
	sheets *SheetService
	logger *logrus.Logger

	// Now is injectable so tests can pin the active month.
	Now func() time.Time
}

func NewStaffService(repo repository.StaffRepository, grids grid.Store, sheets *SheetService) *StaffService {
	return &StaffService{
		repo:   repo,
		grids:  grids,
		sheets: sheets,
		logger: logrus.New(),
		Now:    time.Now,
	}
}

// Available returns the merged directory: persisted-list entries first
// in stored order, then names found only in the active grid, in row
// order. No duplicates by case-insensitive comparison. Either source
// failing contributes nothing rather than failing the call.
func (s *StaffService) Available() []models.StaffEntry {
	entries := []models.StaffEntry{}

	members, err := s.repo.GetAll()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read staff list, continuing with sheet names only")
		members = nil
	}
	for _, m := range members {
		entries = append(entries, models.StaffEntry{
			Name:   m.Name,
			Role:   m.Role,
			Source: models.StaffSourceList,
		})
	}

	for _, name := range s.activeGridNames() {
		known := false
		for _, e := range entries {
			if models.SameName(e.Name, name) {
				known = true
				break
			}
		}
		if !known {
			entries = append(entries, models.StaffEntry{
				Name:   name,
				Source: models.StaffSourceSheet,
			})
		}
	}

	return entries
}

// activeGridNames reads the staff column of the current month's grid,
// if one exists and carries the valid header.
func (s *StaffService) activeGridNames() []string {
	now := s.Now()
	table, err := s.grids.Get(int(now.Month()), now.Year())
	if err != nil {
		return nil
	}

	header, err := table.Cell(1, 1)
	if err != nil || header != grid.HeaderStaffName {
		return nil
	}

	column, err := table.Column(table.Layout().NameColumn())
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read active grid staff column")
		return nil
	}

	names := []string{}
	for _, name := range column {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AddStaff appends a member to the persisted list.
func (s *StaffService) AddStaff(name, role string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("staff name must not be empty")
	}

	s.logger.WithFields(logrus.Fields{
		"name": name,
		"role": role,
	}).Info("Adding staff member")

	return s.repo.Create(&models.StaffMember{Name: name, Role: strings.TrimSpace(role)})
}

// RemoveStaff deletes the member from the persisted list and clears
// their row in every grid.
func (s *StaffService) RemoveStaff(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("staff name must not be empty")
	}

	s.logger.WithField("name", name).Info("Removing staff member")

	if err := s.repo.Delete(name); err != nil {
		return err
	}
	return s.sheets.ClearStaffRow(name)
}

// FormatStaff renders the merged directory for display.
func (s *StaffService) FormatStaff(entries []models.StaffEntry) string {
	if len(entries) == 0 {
		return "📭 No staff members yet"
	}

	var b strings.Builder
	b.WriteString("👥 Staff:\n\n")
	for i, e := range entries {
		suffix := ""
		if e.Role != "" {
			suffix = " — " + e.Role
		}
		if e.Source == models.StaffSourceSheet {
			suffix += " (from grid)"
		}
		b.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, e.Name, suffix))
	}
	return b.String()
}
