package grid

import (
	"fmt"
	"strings"

	"rota-manager/internal/models"
)

// columnName converts a 1-based column index to its A1 letter form.
func columnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", columnName(col), row)
}

// dayRangeRef is the A1 range of one row's day columns, e.g. "B2:AF2".
func dayRangeRef(l Layout, row int) string {
	return fmt.Sprintf("%s:%s", cellRef(l.DayColumn(1), row), cellRef(l.DayColumn(l.DaysInMonth), row))
}

// TotalHoursFormula sums paid hours over the row's day columns: one
// COUNTIF term per visible code with non-zero hours. With no paid
// codes the formula is a constant zero.
func TotalHoursFormula(l Layout, row int, visible []models.ShiftType) string {
	rng := dayRangeRef(l, row)
	terms := []string{}
	for _, st := range visible {
		if st.Hours <= 0 {
			continue
		}
		terms = append(terms, fmt.Sprintf("COUNTIF(%s,\"%s\")*%g", rng, st.Code, st.Hours))
	}
	if len(terms) == 0 {
		return "=0"
	}
	return "=" + strings.Join(terms, "+")
}

// LeaveFormula is the remaining annual leave: entitlement minus AL
// cells in the row.
func LeaveFormula(l Layout, row, entitlement int) string {
	return fmt.Sprintf("=%d-COUNTIF(%s,\"%s\")", entitlement, dayRangeRef(l, row), models.CodeAnnualLeave)
}

func SickFormula(l Layout, row int) string {
	return fmt.Sprintf("=COUNTIF(%s,\"%s\")", dayRangeRef(l, row), models.CodeSick)
}

func TrainingFormula(l Layout, row int) string {
	return fmt.Sprintf("=COUNTIF(%s,\"%s\")", dayRangeRef(l, row), models.CodeTraining)
}

// RowFormulas returns the four aggregate formulas for a row, in
// aggregate-column order.
func RowFormulas(l Layout, row, entitlement int, visible []models.ShiftType) []string {
	return []string{
		TotalHoursFormula(l, row, visible),
		LeaveFormula(l, row, entitlement),
		SickFormula(l, row),
		TrainingFormula(l, row),
	}
}

// Totals mirrors the aggregate columns, computed in Go from cell
// values for text rendering and tests.
type Totals struct {
	Hours          float64
	LeaveRemaining int
	SickDays       int
	TrainingDays   int
}

// ComputeTotals evaluates the same arithmetic the formulas express.
func ComputeTotals(cells []string, visible []models.ShiftType, entitlement int) Totals {
	hours := map[string]float64{}
	for _, st := range visible {
		hours[st.Code] = st.Hours
	}

	totals := Totals{LeaveRemaining: entitlement}
	for _, cell := range cells {
		totals.Hours += hours[cell]
		switch cell {
		case models.CodeAnnualLeave:
			totals.LeaveRemaining--
		case models.CodeSick:
			totals.SickDays++
		case models.CodeTraining:
			totals.TrainingDays++
		}
	}
	return totals
}
