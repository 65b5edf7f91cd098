package grid

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestExcelStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rota.xlsx")

	store, err := NewExcelStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(3, 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty workbook: %v, want ErrNotFound", err)
	}

	table, err := store.Create(3, 2025)
	if err != nil {
		t.Fatal(err)
	}
	layout := table.Layout()

	if err := table.SetRange(1, 1, layout.Headers()); err != nil {
		t.Fatal(err)
	}
	if err := table.SetCell(2, layout.NameColumn(), "J. Smith"); err != nil {
		t.Fatal(err)
	}
	if err := table.SetRange(2, layout.DayColumn(1), []string{"EARLY", "EARLY", "OFF"}); err != nil {
		t.Fatal(err)
	}
	if err := table.SetFormula(2, layout.AggregateStart(), `=COUNTIF(B2:AF2,"EARLY")*7.5`); err != nil {
		t.Fatal(err)
	}
	if err := table.ApplyFormat([]string{"EARLY", "OFF"}); err != nil {
		t.Fatal(err)
	}

	if err := store.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and read everything back.
	reopened, err := NewExcelStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	table, err = reopened.Get(3, 2025)
	if err != nil {
		t.Fatal(err)
	}

	if v, _ := table.Cell(1, 1); v != HeaderStaffName {
		t.Errorf("A1 = %q, want %q", v, HeaderStaffName)
	}
	if v, _ := table.Cell(2, 1); v != "J. Smith" {
		t.Errorf("staff cell = %q", v)
	}
	if v, _ := table.Cell(2, layout.DayColumn(3)); v != "OFF" {
		t.Errorf("day 3 = %q, want OFF", v)
	}
	if f, _ := table.Formula(2, layout.AggregateStart()); f == "" {
		t.Error("aggregate formula was not persisted")
	}

	names, err := table.Column(layout.NameColumn())
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || names[0] != "J. Smith" {
		t.Errorf("Column(1) = %v", names)
	}

	all, err := reopened.All()
	if err != nil || len(all) != 1 {
		t.Errorf("All = %d tables, err %v", len(all), err)
	}
}

func TestExcelStoreReservedColumns(t *testing.T) {
	store, err := NewExcelStore(filepath.Join(t.TempDir(), "rota.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	table, err := store.Create(4, 2025) // 30 days
	if err != nil {
		t.Fatal(err)
	}

	if err := table.SetCell(2, table.Layout().AggregateStart(), "AL"); !errors.Is(err, ErrReservedColumns) {
		t.Errorf("aggregate write: %v, want ErrReservedColumns", err)
	}
}
