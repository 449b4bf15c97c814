package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a derived price is rounded to a whole currency unit.
type RoundingMode int

const (
	// HalfEven rounds .5 to the nearest even integer (12.5 -> 12, 13.5 -> 14).
	HalfEven RoundingMode = iota
	// HalfUp rounds .5 away from zero (12.5 -> 13).
	HalfUp
)

func (m RoundingMode) String() string {
	switch m {
	case HalfEven:
		return "half_even"
	case HalfUp:
		return "half_up"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// UnmarshalText accepts "half_even" or "half_up".
func (m *RoundingMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "half_even", "bank", "":
		*m = HalfEven
	case "half_up", "away_from_zero":
		*m = HalfUp
	default:
		return fmt.Errorf("unknown rounding mode %q", text)
	}
	return nil
}

func (m RoundingMode) round(d decimal.Decimal) int64 {
	if m == HalfUp {
		return d.Round(0).IntPart()
	}
	return d.RoundBank(0).IntPart()
}
