package service

import (
	"fmt"
	"strings"
	"time"

	"rota-manager/pkg/dates"
	"rota-manager/pkg/pattern"

	"github.com/sirupsen/logrus"
)

// Rolling modes.
const (
	RollingFixed      = "fixed"
	RollingUntilMarch = "march"
)

// Per-month outcome states.
const (
	MonthApplied  = "applied"
	MonthFallback = "applied-fallback"
	MonthSkipped  = "skipped"
	MonthFailed   = "failed"
)

// Fixed-count rolling requests larger than this are rejected up front:
// long chains are applied one month at a time to stay inside the
// execution budget.
const maxRollingMonths = 12

// maxSpanDays bounds a date-anchored pattern application.
const maxSpanDays = 366

// MonthOutcome records what happened to one target month.
type MonthOutcome struct {
	Month  dates.MonthYear
	Status string
	Reason string
}

// RollingResult is the aggregate outcome of a multi-month pattern
// application. Partial application is a reported outcome, not an
// error, and there is no rollback.
type RollingResult struct {
	Success  bool
	Message  string
	Applied  int
	Fallback int
	Skipped  int
	Failed   int
	Created  []string
	Outcomes []MonthOutcome
}

func declined(format string, args ...interface{}) *RollingResult {
	return &RollingResult{Message: fmt.Sprintf(format, args...)}
}

// ScheduleService drives the pattern expander across one or many
// consecutive month grids.
type ScheduleService struct {
	sheets  *SheetService
	catalog *CatalogService
	logger  *logrus.Logger

	// Now is injectable so tests can pin the starting month.
	Now func() time.Time
}

func NewScheduleService(sheets *SheetService, catalog *CatalogService) *ScheduleService {
	return &ScheduleService{
		sheets:  sheets,
		catalog: catalog,
		logger:  logrus.New(),
		Now:     time.Now,
	}
}

// parsePattern parses the comma-separated sequence and checks every
// code against the resolved catalog. Unknown codes reject the pattern
// wholesale.
func (s *ScheduleService) parsePattern(text string) ([]string, error) {
	codes, err := pattern.Parse(text)
	if err != nil {
		return nil, err
	}

	visible := map[string]bool{}
	for _, code := range s.catalog.VisibleCodes() {
		visible[code] = true
	}
	for _, code := range codes {
		if !visible[code] {
			return nil, fmt.Errorf("unknown shift code %q", code)
		}
	}
	return codes, nil
}

// ApplyRolling applies a cyclic pattern to a staff member's row across
// consecutive months: a fixed count, or every month until next March.
// A failure in one month never aborts the remaining months.
func (s *ScheduleService) ApplyRolling(staffName, patternText string, startDay, endDay int,
	mode string, horizon int, newStarter *time.Time) (*RollingResult, error) {

	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return declined("staff name must not be empty"), nil
	}

	codes, err := s.parsePattern(patternText)
	if err != nil {
		return declined("invalid pattern: %v", err), nil
	}

	if startDay < 1 || endDay < startDay || endDay > 31 {
		return declined("invalid day range %d-%d", startDay, endDay), nil
	}

	now := s.Now()
	current := dates.MonthYear{Month: int(now.Month()), Year: now.Year()}

	var months []dates.MonthYear
	switch mode {
	case RollingFixed:
		if horizon < 1 {
			return declined("month count must be at least 1"), nil
		}
		if horizon > maxRollingMonths {
			return declined("%d months is too many for one run: apply the pattern one month at a time (maximum %d)",
				horizon, maxRollingMonths), nil
		}
		months = dates.ConsecutiveMonths(current, horizon)
	case RollingUntilMarch:
		months = dates.UntilNextMarch(current)
	default:
		return declined("unknown rolling mode %q", mode), nil
	}

	s.logger.WithFields(logrus.Fields{
		"staff":   staffName,
		"pattern": patternText,
		"months":  len(months),
		"mode":    mode,
	}).Info("Applying rolling pattern")

	var clip time.Time
	if newStarter != nil {
		clip = dates.Normalize(*newStarter)
	}

	result := &RollingResult{}
	offset := 0

	for _, my := range months {
		effStart := startDay

		if !clip.IsZero() {
			clipMonth := dates.MonthYear{Month: int(clip.Month()), Year: clip.Year()}
			if my.Before(clipMonth) {
				result.record(MonthOutcome{Month: my, Status: MonthSkipped, Reason: "before start date"})
				continue
			}
			if my == clipMonth && clip.Day() > effStart {
				effStart = clip.Day()
			}
		}

		outcome, next := s.applySegment(staffName, codes, my, effStart, endDay, offset, result)
		offset = next
		result.record(outcome)
	}

	if err := s.sheets.Flush(); err != nil {
		return nil, err
	}

	result.Success = result.Failed == 0
	result.Message = fmt.Sprintf("%d months applied (%d via cell fallback), %d skipped, %d failed",
		result.Applied+result.Fallback, result.Fallback, result.Skipped, result.Failed)
	return result, nil
}

// ApplyPattern is the date-anchored form: one contiguous date span,
// partitioned into per-month segments with the offset carried across
// each boundary.
func (s *ScheduleService) ApplyPattern(staffName, patternText string, startDate, endDate time.Time) (*RollingResult, error) {
	staffName = strings.TrimSpace(staffName)
	if staffName == "" {
		return declined("staff name must not be empty"), nil
	}

	codes, err := s.parsePattern(patternText)
	if err != nil {
		return declined("invalid pattern: %v", err), nil
	}

	start := dates.Normalize(startDate)
	end := dates.Normalize(endDate)
	if end.Before(start) {
		return declined("start date %s is after end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02")), nil
	}
	if span := dates.InclusiveDays(start, end); span > maxSpanDays {
		return declined("date range covers %d days, maximum is %d", span, maxSpanDays), nil
	}

	s.logger.WithFields(logrus.Fields{
		"staff": staffName,
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
	}).Info("Applying pattern over date range")

	result := &RollingResult{}
	offset := 0

	endMonth := dates.MonthYear{Month: int(end.Month()), Year: end.Year()}
	for my := (dates.MonthYear{Month: int(start.Month()), Year: start.Year()}); ; my = my.Next() {
		segStart := 1
		if my.Month == int(start.Month()) && my.Year == start.Year() {
			segStart = start.Day()
		}
		segEnd := dates.DaysInMonth(my.Month, my.Year)
		if my == endMonth {
			segEnd = end.Day()
		}

		outcome, next := s.applySegment(staffName, codes, my, segStart, segEnd, offset, result)
		offset = next
		result.record(outcome)

		if my == endMonth {
			break
		}
	}

	if err := s.sheets.Flush(); err != nil {
		return nil, err
	}

	result.Success = result.Failed == 0
	result.Message = fmt.Sprintf("%d months applied (%d via cell fallback), %d skipped, %d failed",
		result.Applied+result.Fallback, result.Fallback, result.Skipped, result.Failed)
	return result, nil
}

// applySegment fills one month's day range for one staff row: batched
// range write first, per-cell fallback second. The returned offset
// continues the cycle; skipped months do not advance it.
func (s *ScheduleService) applySegment(staffName string, codes []string, my dates.MonthYear,
	startDay, endDay, offset int, result *RollingResult) (MonthOutcome, int) {

	daysInMonth := dates.DaysInMonth(my.Month, my.Year)
	if endDay > daysInMonth {
		endDay = daysInMonth
	}
	if startDay > endDay {
		return MonthOutcome{Month: my, Status: MonthSkipped, Reason: "no valid days in range"}, offset
	}

	table, created, err := s.sheets.GetOrCreate(my.Month, my.Year)
	if err != nil {
		return MonthOutcome{Month: my, Status: MonthFailed, Reason: err.Error()}, offset
	}
	if created {
		result.Created = append(result.Created, my.String())
	}

	layout := table.Layout()
	if err := layout.CheckDayRange(startDay, endDay); err != nil {
		return MonthOutcome{Month: my, Status: MonthSkipped, Reason: err.Error()}, offset
	}

	row, err := s.sheets.EnsureRow(table, staffName)
	if err != nil {
		return MonthOutcome{Month: my, Status: MonthFailed, Reason: err.Error()}, offset
	}

	width := endDay - startDay + 1
	values, next, err := pattern.Expand(codes, width, offset)
	if err != nil {
		return MonthOutcome{Month: my, Status: MonthFailed, Reason: err.Error()}, offset
	}

	if err := table.SetRange(row, layout.DayColumn(startDay), values); err != nil {
		s.logger.WithError(err).WithField("month", my.String()).
			Warn("Batched write failed, retrying cell by cell")

		for i, value := range values {
			if cellErr := table.SetCell(row, layout.DayColumn(startDay+i), value); cellErr != nil {
				return MonthOutcome{Month: my, Status: MonthFailed,
					Reason: fmt.Sprintf("write failed on day %d: %v", startDay+i, cellErr)}, next
			}
		}
		return MonthOutcome{Month: my, Status: MonthFallback}, next
	}

	return MonthOutcome{Month: my, Status: MonthApplied}, next
}

func (r *RollingResult) record(outcome MonthOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Status {
	case MonthApplied:
		r.Applied++
	case MonthFallback:
		r.Fallback++
	case MonthSkipped:
		r.Skipped++
	case MonthFailed:
		r.Failed++
	}
}

// FormatResult renders a rolling result for display.
func (s *ScheduleService) FormatResult(result *RollingResult) string {
	var b strings.Builder
	if result.Success {
		b.WriteString("✅ " + result.Message + "\n")
	} else {
		b.WriteString("⚠️ " + result.Message + "\n")
	}
	for _, o := range result.Outcomes {
		line := fmt.Sprintf("• %s: %s", o.Month, o.Status)
		if o.Reason != "" {
			line += " (" + o.Reason + ")"
		}
		b.WriteString(line + "\n")
	}
	if len(result.Created) > 0 {
		b.WriteString("New grids: " + strings.Join(result.Created, ", ") + "\n")
	}
	return b.String()
}
