package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a success rate in hundredths of a percentage point,
// so "55.50%" is 5550.
type Percent int64

const (
	// PercentPoint is one percentage point.
	PercentPoint Percent = 100

	maxPercent = 100 * PercentPoint
)

// ParsePercent parses "DD.DD%" text. Up to two decimals are accepted and
// the value must lie between 0% and 100%.
func ParsePercent(s string) (Percent, error) {
	text := strings.TrimSpace(s)

	number, ok := strings.CutSuffix(text, "%")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no %% sign", ErrInvalidPercent, s)
	}

	whole, frac, _ := strings.Cut(number, ".")
	if whole == "" || len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}

	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}

	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}

	p := Percent(w)*PercentPoint + Percent(f)
	if p > maxPercent {
		return 0, fmt.Errorf("%w: %q is above 100%%", ErrInvalidPercent, s)
	}

	return p, nil
}

// Diff returns the absolute difference between two percentages.
func (p Percent) Diff(other Percent) Percent {
	if p > other {
		return p - other
	}

	return other - p
}

// String formats the percentage as "DD.DD%".
func (p Percent) String() string {
	return fmt.Sprintf("%d.%02d%%", p/PercentPoint, p%PercentPoint)
}
