package dates

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month, year int
		want        int
	}{
		{1, 2025, 31},
		{2, 2023, 28},
		{2, 2024, 29}, // leap year
		{2, 2100, 28}, // century, not a leap year
		{2, 2000, 29}, // divisible by 400
		{4, 2025, 30},
		{6, 2024, 30},
		{12, 2025, 31},
	}

	for _, c := range cases {
		if got := DaysInMonth(c.month, c.year); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.month, c.year, got, c.want)
		}
	}
}

func TestWeekdayAbbrev(t *testing.T) {
	// 1 March 2025 was a Saturday.
	if got := WeekdayAbbrev(2025, 3, 1); got != "Sat" {
		t.Errorf("WeekdayAbbrev(2025, 3, 1) = %q, want Sat", got)
	}
	if got := WeekdayAbbrev(2024, 2, 29); got != "Thu" {
		t.Errorf("WeekdayAbbrev(2024, 2, 29) = %q, want Thu", got)
	}
}

func TestInclusiveDays(t *testing.T) {
	start := time.Date(2025, 3, 30, 10, 30, 0, 0, time.UTC)
	end := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	if got := InclusiveDays(start, end); got != 4 {
		t.Errorf("InclusiveDays = %d, want 4", got)
	}
	if got := InclusiveDays(end, end); got != 1 {
		t.Errorf("InclusiveDays same day = %d, want 1", got)
	}
}

func TestConsecutiveMonths(t *testing.T) {
	months := ConsecutiveMonths(MonthYear{Month: 11, Year: 2025}, 4)
	want := []MonthYear{{11, 2025}, {12, 2025}, {1, 2026}, {2, 2026}}
	if len(months) != len(want) {
		t.Fatalf("got %d months, want %d", len(months), len(want))
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("months[%d] = %v, want %v", i, months[i], want[i])
		}
	}
}

func TestUntilNextMarch(t *testing.T) {
	// January targets March of the same year.
	months := UntilNextMarch(MonthYear{Month: 1, Year: 2025})
	if len(months) != 3 || months[2] != (MonthYear{Month: 3, Year: 2025}) {
		t.Errorf("from January 2025: got %v", months)
	}

	// March and later roll over into the following year.
	months = UntilNextMarch(MonthYear{Month: 3, Year: 2025})
	if len(months) != 13 || months[12] != (MonthYear{Month: 3, Year: 2026}) {
		t.Errorf("from March 2025: got %d months ending %v", len(months), months[len(months)-1])
	}

	months = UntilNextMarch(MonthYear{Month: 11, Year: 2025})
	if len(months) != 5 || months[4] != (MonthYear{Month: 3, Year: 2026}) {
		t.Errorf("from November 2025: got %v", months)
	}
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"2025-03-01", "01/03/2025"} {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if got.Year() != 2025 || got.Month() != time.March || got.Day() != 1 {
			t.Errorf("ParseDate(%q) = %v", input, got)
		}
	}

	if _, err := ParseDate("March 1st"); err == nil {
		t.Error("expected error for unrecognized date")
	}
}

func TestParseMonthYear(t *testing.T) {
	for _, input := range []string{"March 2025", "march 2025", "2025-03"} {
		got, err := ParseMonthYear(input)
		if err != nil {
			t.Fatalf("ParseMonthYear(%q): %v", input, err)
		}
		if got != (MonthYear{Month: 3, Year: 2025}) {
			t.Errorf("ParseMonthYear(%q) = %v", input, got)
		}
	}

	if _, err := ParseMonthYear("sometime soon"); err == nil {
		t.Error("expected error for unrecognized month")
	}
	if _, err := ParseMonthYear("2025-13"); err == nil {
		t.Error("expected error for month 13")
	}
}
