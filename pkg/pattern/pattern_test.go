package pattern

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	codes, err := Parse(" early, Early ,OFF ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"EARLY", "EARLY", "OFF"}
	if len(codes) != len(want) {
		t.Fatalf("got %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes[%d] = %q, want %q", i, codes[i], want[i])
		}
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "  ", ",,,"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

func TestParseRejectsTooLong(t *testing.T) {
	input := strings.Repeat("OFF,", MaxLength+1)
	if _, err := Parse(input); err == nil {
		t.Error("expected error for pattern over the maximum length")
	}
}

func TestExpandWeekScenario(t *testing.T) {
	codes := []string{"EARLY", "EARLY", "OFF"}
	values, next, err := Expand(codes, 7, 0)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	want := []string{"EARLY", "EARLY", "OFF", "EARLY", "EARLY", "OFF", "EARLY"}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %q, want %q", i, values[i], want[i])
		}
	}
	if next != 1 {
		t.Errorf("nextOffset = %d, want 1", next)
	}
}

// Expanding days 1-10 then continuing over days 11-15 must match one
// expansion over days 1-15.
func TestExpandContinuation(t *testing.T) {
	codes := []string{"A", "B", "C"}

	first, offset, err := Expand(codes, 10, 0)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	second, _, err := Expand(codes, 5, offset)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	whole, _, err := Expand(codes, 15, 0)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	combined := append(append([]string{}, first...), second...)
	for i := range whole {
		if combined[i] != whole[i] {
			t.Errorf("day %d: split expansion gave %q, whole gave %q", i+1, combined[i], whole[i])
		}
	}
}

func TestExpandRejectsBadInput(t *testing.T) {
	if _, _, err := Expand(nil, 5, 0); err == nil {
		t.Error("expected error for empty pattern")
	}
	if _, _, err := Expand([]string{"OFF"}, 0, 0); err == nil {
		t.Error("expected error for zero width")
	}
	if _, _, err := Expand([]string{"OFF"}, 5, -1); err == nil {
		t.Error("expected error for negative offset")
	}
}
