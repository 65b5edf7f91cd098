package service

import (
	"errors"
	"fmt"
	"strings"

	"rota-manager/internal/grid"
	"rota-manager/internal/models"
	"rota-manager/internal/repository"
	"rota-manager/pkg/dates"

	"github.com/sirupsen/logrus"
)

// SheetService finds or creates month grids, allocates staff rows and
// keeps headers, validation and aggregate formulas in shape.
type SheetService struct {
	grids   grid.Store
	catalog *CatalogService
	allocs  repository.AllocationRepository
	logger  *logrus.Logger
}

func NewSheetService(grids grid.Store, catalog *CatalogService, allocs repository.AllocationRepository) *SheetService {
	return &SheetService{
		grids:   grids,
		catalog: catalog,
		allocs:  allocs,
		logger:  logrus.New(),
	}
}

// Find returns the grid for a month without creating it.
func (s *SheetService) Find(month, year int) (grid.Table, error) {
	return s.grids.Get(month, year)
}

// Flush persists pending grid writes. Callers flush once per logical
// operation.
func (s *SheetService) Flush() error {
	return s.grids.Flush()
}

// GetOrCreate returns the month's grid, materializing it on first
// reference: header row in one batched write, column sizing, frozen
// panes and day-column validation from the visible catalog.
func (s *SheetService) GetOrCreate(month, year int) (grid.Table, bool, error) {
	table, err := s.grids.Get(month, year)
	if err == nil {
		return table, false, nil
	}
	if !errors.Is(err, grid.ErrNotFound) {
		return nil, false, err
	}

	s.logger.WithFields(logrus.Fields{
		"month": month,
		"year":  year,
	}).Info("Creating month grid")

	table, err = s.grids.Create(month, year)
	if err != nil {
		return nil, false, err
	}

	layout := table.Layout()
	if err := table.SetRange(1, 1, layout.Headers()); err != nil {
		return nil, false, fmt.Errorf("failed to write header row: %w", err)
	}
	if err := table.ApplyFormat(s.catalog.VisibleCodes()); err != nil {
		return nil, false, fmt.Errorf("failed to format grid: %w", err)
	}

	return table, true, nil
}

// CreateResult reports a createMonthlyGrids run.
type CreateResult struct {
	Success  bool
	Message  string
	Created  []string
	Existing []string
}

// CreateMonths materializes grids for an explicit month selection.
func (s *SheetService) CreateMonths(months []dates.MonthYear) (*CreateResult, error) {
	if len(months) == 0 {
		return &CreateResult{Message: "no months selected"}, nil
	}

	result := &CreateResult{Success: true}
	for _, my := range months {
		_, created, err := s.GetOrCreate(my.Month, my.Year)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created = append(result.Created, my.String())
		} else {
			result.Existing = append(result.Existing, my.String())
		}
	}

	if err := s.Flush(); err != nil {
		return nil, err
	}

	result.Message = fmt.Sprintf("created %d grids, %d already existed",
		len(result.Created), len(result.Existing))
	return result, nil
}

// EnsureRow returns the row bound to a staff name, allocating one on
// first use: reuse the first row whose name cell is empty, else
// append. Newly bound rows get their aggregate formulas immediately.
func (s *SheetService) EnsureRow(table grid.Table, staffName string) (int, error) {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return 0, fmt.Errorf("staff name must not be empty")
	}

	layout := table.Layout()
	names, err := table.Column(layout.NameColumn())
	if err != nil {
		return 0, err
	}

	firstEmpty := 0
	for i, name := range names {
		row := i + 2
		if strings.TrimSpace(name) == staffName {
			return row, nil
		}
		if firstEmpty == 0 && strings.TrimSpace(name) == "" {
			firstEmpty = row
		}
	}

	row := firstEmpty
	if row == 0 {
		row = len(names) + 2
	}

	if err := table.SetCell(row, layout.NameColumn(), staffName); err != nil {
		return 0, err
	}
	if err := s.rebuildRowFormulas(table, row, staffName); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"sheet": layout.SheetName(),
		"staff": staffName,
		"row":   row,
	}).Debug("Bound staff row")
	return row, nil
}

// Entitlement resolves annual leave days for a staff member and year:
// year override, then standing default, then 28. Storage failures
// degrade to the default.
func (s *SheetService) Entitlement(staffName string, year int) int {
	alloc, err := s.allocs.GetForYear(staffName, year)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read year allocation, using default")
		return models.DefaultLeaveDays
	}
	if alloc != nil {
		return alloc.Days
	}

	alloc, err = s.allocs.GetDefault(staffName)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read allocation, using default")
		return models.DefaultLeaveDays
	}
	if alloc != nil {
		return alloc.Days
	}
	return models.DefaultLeaveDays
}

func (s *SheetService) rebuildRowFormulas(table grid.Table, row int, staffName string) error {
	layout := table.Layout()
	entitlement := s.Entitlement(staffName, layout.Year)
	formulas := grid.RowFormulas(layout, row, entitlement, s.catalog.Resolve())

	for i, formula := range formulas {
		if err := table.SetFormula(row, layout.AggregateStart()+i, formula); err != nil {
			return err
		}
	}
	return nil
}

// Resync re-applies day-column validation and rebuilds every row's
// aggregate formulas on every valid grid. Runs after catalog or
// allocation changes.
func (s *SheetService) Resync() error {
	tables, err := s.grids.All()
	if err != nil {
		return err
	}

	codes := s.catalog.VisibleCodes()
	for _, table := range tables {
		layout := table.Layout()

		header, err := table.Cell(1, 1)
		if err != nil || header != grid.HeaderStaffName {
			continue // not a grid we own
		}

		if err := table.ApplyFormat(codes); err != nil {
			return fmt.Errorf("failed to reformat %s: %w", layout.SheetName(), err)
		}

		names, err := table.Column(layout.NameColumn())
		if err != nil {
			return err
		}
		for i, name := range names {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if err := s.rebuildRowFormulas(table, i+2, strings.TrimSpace(name)); err != nil {
				return err
			}
		}
	}

	s.logger.WithField("grids", len(tables)).Info("Resynced grids")
	return s.Flush()
}

// ClearStaffRow blanks a staff member's row in every grid: the name
// cell, every day cell and the aggregate formulas. Rows are cleared,
// never deleted.
func (s *SheetService) ClearStaffRow(staffName string) error {
	staffName = strings.TrimSpace(staffName)

	tables, err := s.grids.All()
	if err != nil {
		return err
	}

	for _, table := range tables {
		layout := table.Layout()
		names, err := table.Column(layout.NameColumn())
		if err != nil {
			return err
		}

		for i, name := range names {
			if strings.TrimSpace(name) != staffName {
				continue
			}
			row := i + 2

			if err := table.SetCell(row, layout.NameColumn(), ""); err != nil {
				return err
			}
			blanks := make([]string, layout.DaysInMonth)
			if err := table.SetRange(row, layout.DayColumn(1), blanks); err != nil {
				return err
			}
			for c := 0; c < len(grid.AggregateHeaders); c++ {
				if err := table.SetFormula(row, layout.AggregateStart()+c, ""); err != nil {
					return err
				}
			}
		}
	}

	s.logger.WithField("staff", staffName).Info("Cleared staff rows")
	return s.Flush()
}

// RenderMonth produces the text view of one month's grid with totals
// computed from the cell values.
func (s *SheetService) RenderMonth(my dates.MonthYear) (string, error) {
	table, err := s.grids.Get(my.Month, my.Year)
	if err != nil {
		if errors.Is(err, grid.ErrNotFound) {
			return "", fmt.Errorf("no grid exists for %s", my)
		}
		return "", err
	}

	layout := table.Layout()
	names, err := table.Column(layout.NameColumn())
	if err != nil {
		return "", err
	}

	visible := s.catalog.Resolve()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 %s\n\n", layout.SheetName()))

	populated := 0
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		populated++
		row := i + 2

		cells := make([]string, 0, layout.DaysInMonth)
		for day := 1; day <= layout.DaysInMonth; day++ {
			value, err := table.Cell(row, layout.DayColumn(day))
			if err != nil {
				return "", err
			}
			cells = append(cells, value)
		}

		totals := grid.ComputeTotals(cells, visible, s.Entitlement(name, layout.Year))
		b.WriteString(fmt.Sprintf("%s: %gh worked, %d leave left, %d sick, %d training\n",
			name, totals.Hours, totals.LeaveRemaining, totals.SickDays, totals.TrainingDays))
	}

	if populated == 0 {
		b.WriteString("No staff rows yet.\n")
	}
	return b.String(), nil
}

// GridNames lists the sheets currently recognized as month grids.
func (s *SheetService) GridNames() ([]string, error) {
	tables, err := s.grids.All()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tables))
	for _, table := range tables {
		names = append(names, table.Layout().SheetName())
	}
	return names, nil
}
