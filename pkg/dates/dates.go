package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthYear identifies one calendar month.
type MonthYear struct {
	Month int
	Year  int
}

func (my MonthYear) String() string {
	return fmt.Sprintf("%s %d", time.Month(my.Month).String(), my.Year)
}

// Next returns the following calendar month.
func (my MonthYear) Next() MonthYear {
	if my.Month == 12 {
		return MonthYear{Month: 1, Year: my.Year + 1}
	}
	return MonthYear{Month: my.Month + 1, Year: my.Year}
}

// Before reports whether my is strictly earlier than other.
func (my MonthYear) Before(other MonthYear) bool {
	if my.Year != other.Year {
		return my.Year < other.Year
	}
	return my.Month < other.Month
}

// DaysInMonth returns the number of days in the given month,
// leap years included.
func DaysInMonth(month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayAbbrev returns the three-letter weekday for a calendar day.
func WeekdayAbbrev(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday().String()[:3]
}

// Normalize strips the time-of-day component.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays counts the days in [start, end], both ends included.
func InclusiveDays(start, end time.Time) int {
	start = Normalize(start)
	end = Normalize(end)
	return int(end.Sub(start).Hours()/24) + 1
}

// ConsecutiveMonths returns count months starting at from.
func ConsecutiveMonths(from MonthYear, count int) []MonthYear {
	months := make([]MonthYear, 0, count)
	cur := from
	for i := 0; i < count; i++ {
		months = append(months, cur)
		cur = cur.Next()
	}
	return months
}

// UntilNextMarch returns every month from from up to and including the
// next March. January and February target March of the same year;
// March and later target March of the following year.
func UntilNextMarch(from MonthYear) []MonthYear {
	target := MonthYear{Month: 3, Year: from.Year}
	if from.Month >= 3 {
		target.Year = from.Year + 1
	}

	months := []MonthYear{}
	for cur := from; ; cur = cur.Next() {
		months = append(months, cur)
		if cur == target {
			break
		}
	}
	return months
}

// ParseDate accepts "2006-01-02" and "02/01/2006".
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, input); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD or DD/MM/YYYY", input)
}

// ParseMonthYear accepts "March 2025" and "2025-03".
func ParseMonthYear(input string) (MonthYear, error) {
	input = strings.TrimSpace(input)

	if parts := strings.Split(input, "-"); len(parts) == 2 {
		year, yerr := strconv.Atoi(parts[0])
		month, merr := strconv.Atoi(parts[1])
		if yerr == nil && merr == nil && month >= 1 && month <= 12 {
			return MonthYear{Month: month, Year: year}, nil
		}
	}

	if parts := strings.Fields(input); len(parts) == 2 {
		if year, err := strconv.Atoi(parts[1]); err == nil {
			name := strings.ToLower(parts[0])
			for m := 1; m <= 12; m++ {
				if strings.ToLower(time.Month(m).String()) == name {
					return MonthYear{Month: m, Year: year}, nil
				}
			}
		}
	}

	return MonthYear{}, fmt.Errorf("unrecognized month %q, expected \"March 2025\" or \"2025-03\"", input)
}
