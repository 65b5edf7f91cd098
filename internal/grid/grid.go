// Package grid models the per-month rota table: one row per staff
// member, one column per calendar day, then four derived aggregate
// columns. Storage backends implement Store/Table; everything above
// this package only sees the interfaces.
package grid

import (
	"errors"
	"fmt"
	"rota-manager/pkg/dates"
)

var (
	// ErrNotFound is returned when no grid exists for a month.
	ErrNotFound = errors.New("grid not found")

	// ErrReservedColumns is returned when a day write would touch the
	// aggregate columns. Such writes are rejected, never clipped.
	ErrReservedColumns = errors.New("write touches reserved aggregate columns")

	// ErrDayRange is returned for a day range outside the month.
	ErrDayRange = errors.New("day range outside the month")
)

// HeaderStaffName is the A1 literal that marks a sheet as a valid grid.
const HeaderStaffName = "Staff Name"

// AggregateHeaders are the four trailing derived columns, in their
// fixed order.
var AggregateHeaders = [4]string{"Total Hours", "Annual Leave", "Sick Days", "Training Days"}

// Layout is the column geometry of one month's grid.
type Layout struct {
	Month       int
	Year        int
	DaysInMonth int
}

func NewLayout(month, year int) Layout {
	return Layout{
		Month:       month,
		Year:        year,
		DaysInMonth: dates.DaysInMonth(month, year),
	}
}

// SheetName returns the grid's sheet title, e.g. "March 2025".
func (l Layout) SheetName() string {
	return dates.MonthYear{Month: l.Month, Year: l.Year}.String()
}

// NameColumn is the staff-name column.
func (l Layout) NameColumn() int { return 1 }

// DayColumn maps a calendar day to its column.
func (l Layout) DayColumn(day int) int { return day + 1 }

// AggregateStart is the first reserved column. Day writes at or past
// it violate the layout contract.
func (l Layout) AggregateStart() int { return l.DaysInMonth + 2 }

// LastColumn is the final aggregate column.
func (l Layout) LastColumn() int { return l.DaysInMonth + 1 + len(AggregateHeaders) }

// Headers builds the full header row: staff name, one "<day>\n<Mon>"
// per calendar day, then the aggregate headers.
func (l Layout) Headers() []string {
	headers := make([]string, 0, l.LastColumn())
	headers = append(headers, HeaderStaffName)
	for day := 1; day <= l.DaysInMonth; day++ {
		headers = append(headers, fmt.Sprintf("%d\n%s", day, dates.WeekdayAbbrev(l.Year, l.Month, day)))
	}
	headers = append(headers, AggregateHeaders[:]...)
	return headers
}

// CheckDayRange validates an inclusive day range against the month.
func (l Layout) CheckDayRange(startDay, endDay int) error {
	if startDay > endDay {
		return fmt.Errorf("%w: start day %d after end day %d", ErrDayRange, startDay, endDay)
	}
	if startDay < 1 || endDay > l.DaysInMonth {
		return fmt.Errorf("%w: days %d-%d, month has %d days", ErrDayRange, startDay, endDay, l.DaysInMonth)
	}
	return nil
}

// Table is one month's grid. Data-row writes go through the reserved-
// column guard; aggregate cells are only reachable via SetFormula.
type Table interface {
	Layout() Layout

	// Rows returns the last used row index, header included.
	Rows() (int, error)

	Cell(row, col int) (string, error)
	SetCell(row, col int, value string) error

	// SetRange writes values into consecutive columns of one row as a
	// single batched write.
	SetRange(row, startCol int, values []string) error

	SetFormula(row, col int, formula string) error
	Formula(row, col int) (string, error)

	// Column returns the values of one column for every data row
	// (row 2 onward), in row order.
	Column(col int) ([]string, error)

	// ApplyFormat sizes columns, freezes the header row and staff
	// column, and restricts day-column input to the given codes.
	ApplyFormat(codes []string) error
}

// Store finds, creates and persists grids.
type Store interface {
	// Get returns the grid for a month, or ErrNotFound.
	Get(month, year int) (Table, error)

	// Create returns a new empty grid for the month. Creating an
	// existing month returns the existing grid.
	Create(month, year int) (Table, error)

	// All returns every stored table whose name parses as a month
	// grid, in storage order.
	All() ([]Table, error)

	// Flush persists pending writes. One flush per logical operation.
	Flush() error

	Close() error
}

// checkDataWrite enforces the reserved-column contract for writes to
// data rows. The header row is exempt: it legitimately spans the
// aggregate columns.
func checkDataWrite(l Layout, row, startCol, width int) error {
	if row <= 1 {
		return nil
	}
	if startCol < 1 || width < 1 {
		return fmt.Errorf("%w: column %d width %d", ErrDayRange, startCol, width)
	}
	if startCol+width-1 >= l.AggregateStart() {
		return fmt.Errorf("%w: columns %d-%d, aggregates start at %d",
			ErrReservedColumns, startCol, startCol+width-1, l.AggregateStart())
	}
	return nil
}
