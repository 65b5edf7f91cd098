package pattern

import (
	"fmt"
	"strings"
)

// MaxLength bounds how many codes one pattern may carry.
const MaxLength = 50

// Parse splits a comma-separated shift sequence into uppercase codes.
// Whether each code exists in the catalog is the caller's check.
func Parse(input string) ([]string, error) {
	codes := []string{}
	for _, part := range strings.Split(input, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("pattern is empty")
	}
	if len(codes) > MaxLength {
		return nil, fmt.Errorf("pattern has %d codes, maximum is %d", len(codes), MaxLength)
	}

	return codes, nil
}

// Expand produces width codes starting at offset within the cycle and
// returns the offset the next call should continue from. Pure: the same
// inputs always yield the same sequence, so a pattern that does not
// evenly divide a month continues seamlessly into the next one.
func Expand(codes []string, width, offset int) ([]string, int, error) {
	if len(codes) == 0 {
		return nil, 0, fmt.Errorf("pattern is empty")
	}
	if width < 1 {
		return nil, 0, fmt.Errorf("width must be at least 1, got %d", width)
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("offset must not be negative, got %d", offset)
	}

	values := make([]string, width)
	for i := 0; i < width; i++ {
		values[i] = codes[(offset+i)%len(codes)]
	}

	return values, (offset + width) % len(codes), nil
}
