package grid

import (
	"errors"
	"strings"
	"testing"

	"rota-manager/internal/models"
)

func TestLayoutColumns(t *testing.T) {
	l := NewLayout(2, 2024)
	if l.DaysInMonth != 29 {
		t.Fatalf("February 2024 should have 29 days, got %d", l.DaysInMonth)
	}
	if l.DayColumn(1) != 2 || l.DayColumn(29) != 30 {
		t.Errorf("day columns wrong: %d, %d", l.DayColumn(1), l.DayColumn(29))
	}
	if l.AggregateStart() != 31 {
		t.Errorf("AggregateStart = %d, want 31", l.AggregateStart())
	}
	if l.LastColumn() != 34 {
		t.Errorf("LastColumn = %d, want 34", l.LastColumn())
	}
	if l.SheetName() != "February 2024" {
		t.Errorf("SheetName = %q", l.SheetName())
	}
}

func TestLayoutHeaders(t *testing.T) {
	l := NewLayout(3, 2025)
	headers := l.Headers()

	if len(headers) != 36 {
		t.Fatalf("March needs 36 headers, got %d", len(headers))
	}
	if headers[0] != HeaderStaffName {
		t.Errorf("headers[0] = %q", headers[0])
	}
	// 1 March 2025 was a Saturday.
	if headers[1] != "1\nSat" {
		t.Errorf("headers[1] = %q", headers[1])
	}
	if headers[32] != "Total Hours" || headers[35] != "Training Days" {
		t.Errorf("aggregate headers wrong: %q, %q", headers[32], headers[35])
	}
}

func TestCheckDayRange(t *testing.T) {
	l := NewLayout(4, 2025) // 30 days

	if err := l.CheckDayRange(1, 30); err != nil {
		t.Errorf("full month should be valid: %v", err)
	}
	for _, c := range [][2]int{{0, 5}, {5, 31}, {10, 9}} {
		if err := l.CheckDayRange(c[0], c[1]); !errors.Is(err, ErrDayRange) {
			t.Errorf("CheckDayRange(%d, %d) = %v, want ErrDayRange", c[0], c[1], err)
		}
	}
}

// Writes into the aggregate area must be rejected, not clipped.
func TestReservedColumnsRejected(t *testing.T) {
	store := NewMemoryStore()
	table, err := store.Create(4, 2025) // 30 days, aggregates from column 32
	if err != nil {
		t.Fatal(err)
	}

	if err := table.SetCell(2, 32, "AL"); !errors.Is(err, ErrReservedColumns) {
		t.Errorf("SetCell into aggregate column: %v, want ErrReservedColumns", err)
	}

	// A range that starts in the day area but spills over is equally
	// invalid.
	err = table.SetRange(2, 30, []string{"AL", "AL", "AL"})
	if !errors.Is(err, ErrReservedColumns) {
		t.Errorf("spilling SetRange: %v, want ErrReservedColumns", err)
	}
	if v, _ := table.Cell(2, 30); v != "" {
		t.Errorf("rejected write must not be applied partially, cell holds %q", v)
	}

	// The header row spans all columns legitimately.
	if err := table.SetRange(1, 1, table.Layout().Headers()); err != nil {
		t.Errorf("header write: %v", err)
	}
}

func TestMemoryStoreGetCreate(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get(3, 2025); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get before Create: %v, want ErrNotFound", err)
	}

	created, err := store.Create(3, 2025)
	if err != nil {
		t.Fatal(err)
	}
	again, err := store.Create(3, 2025)
	if err != nil {
		t.Fatal(err)
	}
	if created != again {
		t.Error("Create of an existing month must return the existing grid")
	}

	got, err := store.Get(3, 2025)
	if err != nil || got != created {
		t.Errorf("Get after Create: %v", err)
	}

	all, err := store.All()
	if err != nil || len(all) != 1 {
		t.Errorf("All returned %d tables", len(all))
	}
}

func TestRowFormulas(t *testing.T) {
	l := NewLayout(4, 2025) // day range B..AE
	visible := []models.ShiftType{
		{Code: "EARLY", Hours: 7.5},
		{Code: "NIGHT", Hours: 11},
		{Code: "OFF", Hours: 0},
	}

	formulas := RowFormulas(l, 2, 28, visible)
	if len(formulas) != 4 {
		t.Fatalf("expected 4 formulas, got %d", len(formulas))
	}

	hours := formulas[0]
	if !strings.Contains(hours, `COUNTIF(B2:AE2,"EARLY")*7.5`) ||
		!strings.Contains(hours, `COUNTIF(B2:AE2,"NIGHT")*11`) {
		t.Errorf("total hours formula wrong: %s", hours)
	}
	if strings.Contains(hours, "OFF") {
		t.Errorf("zero-hour codes must not appear: %s", hours)
	}

	if formulas[1] != `=28-COUNTIF(B2:AE2,"AL")` {
		t.Errorf("leave formula wrong: %s", formulas[1])
	}
	if formulas[2] != `=COUNTIF(B2:AE2,"SICK")` {
		t.Errorf("sick formula wrong: %s", formulas[2])
	}
	if formulas[3] != `=COUNTIF(B2:AE2,"TRAINING")` {
		t.Errorf("training formula wrong: %s", formulas[3])
	}
}

func TestTotalHoursFormulaNoPaidCodes(t *testing.T) {
	l := NewLayout(4, 2025)
	if f := TotalHoursFormula(l, 2, []models.ShiftType{{Code: "OFF"}}); f != "=0" {
		t.Errorf("expected constant zero formula, got %s", f)
	}
}

func TestComputeTotals(t *testing.T) {
	visible := []models.ShiftType{
		{Code: "EARLY", Hours: 7.5},
		{Code: "AL", Hours: 7.5},
		{Code: "SICK", Hours: 0},
		{Code: "TRAINING", Hours: 7.5},
	}

	// Five AL cells against an entitlement of 28 leaves 23.
	cells := []string{"EARLY", "AL", "AL", "AL", "AL", "AL", "SICK", "TRAINING", ""}
	totals := ComputeTotals(cells, visible, 28)

	if totals.LeaveRemaining != 23 {
		t.Errorf("LeaveRemaining = %d, want 23", totals.LeaveRemaining)
	}
	if totals.Hours != 7.5+5*7.5+7.5 {
		t.Errorf("Hours = %g", totals.Hours)
	}
	if totals.SickDays != 1 || totals.TrainingDays != 1 {
		t.Errorf("SickDays = %d, TrainingDays = %d", totals.SickDays, totals.TrainingDays)
	}
}

func TestColumnName(t *testing.T) {
	cases := map[int]string{1: "A", 26: "Z", 27: "AA", 28: "AB", 52: "AZ", 53: "BA"}
	for col, want := range cases {
		if got := columnName(col); got != want {
			t.Errorf("columnName(%d) = %q, want %q", col, got, want)
		}
	}
}
