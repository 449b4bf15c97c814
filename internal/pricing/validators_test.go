package pricing

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseBasePrice(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100"},
		{"150,50", "150.5"},
		{"150.50", "150.5"},
		{"  99,9 ", "99.9"},
		{"0,01", "0.01"},
		{"1e3", "1000"},
		{"1,5e2", "150"},
		{"12.3400", "12.34"},
		{"1000000000", "1000000000"},
		{"1000000000.00", "1000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBasePrice(tt.input)
			if err != nil {
				t.Fatalf("ParseBasePrice(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseBasePrice(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBasePrice_Invalid(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"abc", ErrInvalidFormat},
		{"", ErrInvalidFormat},
		{"   ", ErrInvalidFormat},
		{"1,000.50", ErrInvalidFormat},
		{"12zł", ErrInvalidFormat},
		{"NaN", ErrInvalidFormat},
		{"0", ErrNotPositive},
		{"0,00", ErrNotPositive},
		{"-5", ErrNotPositive},
		{"-1e-10000000", ErrNotPositive},
		{"1000000000.01", ErrTooLarge},
		{"1e10", ErrTooLarge},
		{"1e2147483647", ErrTooLarge},
		{"12.345", ErrTooPrecise},
		{"1e-3", ErrTooPrecise},
		{"1e-10000000", ErrTooPrecise},
		{strings.Repeat("1", 33), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseBasePrice(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseBasePrice(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}

			var parseErr *ParseError
			var rangeErr *RangeError
			if tt.wantErr == ErrInvalidFormat && !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got %T", err)
			}
			if tt.wantErr != ErrInvalidFormat && !errors.As(err, &rangeErr) {
				t.Errorf("expected *RangeError, got %T", err)
			}
			if len(err.Error()) > 100 {
				t.Errorf("error text is %d bytes long", len(err.Error()))
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	_, err := ParseBasePrice("abc")
	if got := UserMessage(err); got != "Nieprawidłowy format ceny. Wprowadź liczbę." {
		t.Errorf("unexpected message for format error: %q", got)
	}

	_, err = ParseBasePrice("0")
	if got := UserMessage(err); got != "Cena bazowa musi być większa niż 0" {
		t.Errorf("unexpected message for range error: %q", got)
	}

	_, err = ParseBasePrice("1e-10000000")
	if got := UserMessage(err); got != "Cena bazowa może mieć najwyżej 2 miejsca po przecinku" {
		t.Errorf("unexpected message for precision error: %q", got)
	}
}
