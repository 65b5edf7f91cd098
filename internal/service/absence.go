package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rota-manager/internal/grid"
	"rota-manager/internal/models"
	"rota-manager/internal/repository"
	"rota-manager/pkg/dates"

	"github.com/sirupsen/logrus"
)

// AbsenceResult reports one logged absence and how far it reached the
// grids. The record itself is appended before any grid write; grid
// failures never roll it back.
type AbsenceResult struct {
	Success       bool
	Message       string
	Record        *models.AbsenceRecord
	Applied       int
	Errors        int
	SkippedMonths []string
}

// AbsenceService appends absence records and writes the mapped shift
// code into every grid the date range touches.
type AbsenceService struct {
	repo   repository.AbsenceRepository
	sheets *SheetService
	logger *logrus.Logger
}

func NewAbsenceService(repo repository.AbsenceRepository, sheets *SheetService) *AbsenceService {
	return &AbsenceService{
		repo:   repo,
		sheets: sheets,
		logger: logrus.New(),
	}
}

type monthBucket struct {
	month dates.MonthYear
	days  []int
}

// LogAbsence records the absence and writes its shift code across the
// months the range spans. Grids are located, never created: a missing
// grid is a skipped bucket, and one bucket's failure never blocks the
// others.
func (s *AbsenceService) LogAbsence(staffName, absenceType string, startDate, endDate time.Time, reason string) (*AbsenceResult, error) {
	staffName = strings.TrimSpace(staffName)

	record := &models.AbsenceRecord{
		StaffName: staffName,
		Type:      strings.TrimSpace(absenceType),
		StartDate: dates.Normalize(startDate),
		EndDate:   dates.Normalize(endDate),
		Reason:    strings.TrimSpace(reason),
	}
	if !record.IsValid() {
		return &AbsenceResult{Message: "invalid absence: check the staff name and that the start date is not after the end date"}, nil
	}
	record.Days = dates.InclusiveDays(record.StartDate, record.EndDate)

	s.logger.WithFields(logrus.Fields{
		"staff": staffName,
		"type":  record.Type,
		"days":  record.Days,
	}).Info("Logging absence")

	if err := s.repo.Create(record); err != nil {
		s.logger.WithError(err).Error("Failed to append absence record")
		return nil, err
	}

	result := &AbsenceResult{Record: record}
	code := record.ShiftCode()

	for _, bucket := range partitionByMonth(record.StartDate, record.EndDate) {
		s.applyBucket(bucket, staffName, code, result)
	}

	if err := s.sheets.Flush(); err != nil {
		return nil, err
	}

	result.Success = result.Errors == 0
	result.Message = fmt.Sprintf("logged %s for %d days, %d cells written, %d errors",
		record.Type, record.Days, result.Applied, result.Errors)
	if len(result.SkippedMonths) > 0 {
		result.Message += fmt.Sprintf(", no grid for %s", strings.Join(result.SkippedMonths, ", "))
	}
	return result, nil
}

// applyBucket writes one month's day numbers into the staff row.
func (s *AbsenceService) applyBucket(bucket monthBucket, staffName, code string, result *AbsenceResult) {
	table, err := s.sheets.Find(bucket.month.Month, bucket.month.Year)
	if err != nil {
		if errors.Is(err, grid.ErrNotFound) {
			result.SkippedMonths = append(result.SkippedMonths, bucket.month.String())
			return
		}
		s.logger.WithError(err).WithField("month", bucket.month.String()).Error("Failed to open grid")
		result.Errors += len(bucket.days)
		return
	}

	layout := table.Layout()
	row, err := s.sheets.EnsureRow(table, staffName)
	if err != nil {
		s.logger.WithError(err).WithField("month", bucket.month.String()).Error("Failed to resolve staff row")
		result.Errors += len(bucket.days)
		return
	}

	for _, day := range bucket.days {
		if day > layout.DaysInMonth {
			continue // out of range for this month
		}
		if err := table.SetCell(row, layout.DayColumn(day), code); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"month": bucket.month.String(),
				"day":   day,
			}).Warn("Failed to write absence cell")
			result.Errors++
			continue
		}
		result.Applied++
	}
}

// partitionByMonth splits an inclusive date span into per-month day
// buckets, in chronological order.
func partitionByMonth(start, end time.Time) []monthBucket {
	buckets := []monthBucket{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		my := dates.MonthYear{Month: int(d.Month()), Year: d.Year()}
		if len(buckets) == 0 || buckets[len(buckets)-1].month != my {
			buckets = append(buckets, monthBucket{month: my})
		}
		buckets[len(buckets)-1].days = append(buckets[len(buckets)-1].days, d.Day())
	}
	return buckets
}

// ListAbsences returns the logged absences for one staff member, or
// all of them when the name is empty.
func (s *AbsenceService) ListAbsences(staffName string) ([]models.AbsenceRecord, error) {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return s.repo.GetAll()
	}
	return s.repo.GetByStaffName(staffName)
}

// FormatAbsences renders absence records for display.
func (s *AbsenceService) FormatAbsences(records []models.AbsenceRecord) string {
	if len(records) == 0 {
		return "📭 No absences logged"
	}

	var b strings.Builder
	b.WriteString("🗒 Absences:\n\n")
	for _, r := range records {
		line := fmt.Sprintf("%s: %s, %s to %s (%d days)",
			r.StaffName, r.Type,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"), r.Days)
		if r.Reason != "" {
			line += " — " + r.Reason
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
