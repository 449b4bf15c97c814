package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidFormat = errors.New("base price is not a number")
	ErrNotPositive   = errors.New("base price must be greater than zero")
	ErrTooLarge      = errors.New("base price is too large")
	ErrTooPrecise    = errors.New("base price has too many decimal places")
)

// MaxBasePrice keeps every derived price inside int64.
var MaxBasePrice = decimal.NewFromInt(1_000_000_000)

const (
	// MaxFractionDigits is the finest base price accepted: one grosz.
	MaxFractionDigits = 2

	maxInputLength   = 32
	maxIntegerDigits = 10 // digits of MaxBasePrice
)

// ParseError reports base price text that is not a number.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse base price %q: %v", e.Input, ErrInvalidFormat)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

// RangeError reports a number that is not a usable base price: not positive,
// above MaxBasePrice or finer than MaxFractionDigits.
type RangeError struct {
	Input string
	Value decimal.Decimal
	Err   error
}

// Error quotes the input text. Value may carry an extreme exponent and is
// never formatted here.
func (e *RangeError) Error() string {
	return fmt.Sprintf("base price %q: %v", e.Input, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

// ParseBasePrice accepts both "." and "," as the decimal separator.
func ParseBasePrice(text string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if normalized == "" || len(normalized) > maxInputLength {
		return decimal.Zero, &ParseError{Input: text}
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, &ParseError{Input: text}
	}

	if value.Sign() <= 0 {
		return decimal.Zero, &RangeError{Input: text, Value: value, Err: ErrNotPositive}
	}

	// Exponent notation can move the point arbitrarily far. Check the
	// magnitude on the digits alone before any arithmetic rescales value.
	intDigits, fracDigits := digitSpan(value)
	if fracDigits > MaxFractionDigits {
		return decimal.Zero, &RangeError{Input: text, Value: value, Err: ErrTooPrecise}
	}
	if intDigits > maxIntegerDigits || value.GreaterThan(MaxBasePrice) {
		return decimal.Zero, &RangeError{Input: text, Value: value, Err: ErrTooLarge}
	}

	return value, nil
}

// digitSpan counts the digits of a positive d before and after the decimal
// point, ignoring trailing zeros of the coefficient.
func digitSpan(d decimal.Decimal) (intDigits, fracDigits int64) {
	coefficient := d.Coefficient().String()
	significant := strings.TrimRight(coefficient, "0")
	exp := int64(d.Exponent()) + int64(len(coefficient)-len(significant))

	if exp < 0 {
		fracDigits = -exp
	}
	intDigits = int64(len(significant)) + exp
	if intDigits < 0 {
		intDigits = 0
	}
	return intDigits, fracDigits
}

// UserMessage turns a ParseBasePrice error into the text shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return "Nieprawidłowy format ceny. Wprowadź liczbę."
	case errors.Is(err, ErrNotPositive):
		return "Cena bazowa musi być większa niż 0"
	case errors.Is(err, ErrTooLarge):
		return "Cena bazowa jest zbyt duża"
	case errors.Is(err, ErrTooPrecise):
		return "Cena bazowa może mieć najwyżej 2 miejsca po przecinku"
	default:
		return "Nie udało się obliczyć cen"
	}
}
