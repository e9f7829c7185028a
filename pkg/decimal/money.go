package decimal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyInput is returned when an entered amount has no digits left after cleaning.
var ErrEmptyInput = errors.New("no amount entered")

// Money represents a dollar figure entered by a user or loaded from data.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromString parses a plain decimal string such as "1234.50".
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseMoney reads an amount the way the input fields accept it: everything except digits and
// the decimal point is dropped, so "$1,234.50" and "1 234.5" are both accepted.
// A minus sign is dropped as well; entered amounts are never negative.
func ParseMoney(input string) (Money, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, input)
	if cleaned == "" || cleaned == "." {
		return Money{}, ErrEmptyInput
	}
	m, err := NewMoneyFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	return m, nil
}

// Ptr returns the underlying decimal as a pointer, the form optional figures take in calculations.
func (m Money) Ptr() *decimal.Decimal {
	d := m.Decimal
	return &d
}
