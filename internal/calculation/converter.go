package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingArgument is returned when a required figure is absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidValue is returned when a figure violates its sign constraint.
	ErrInvalidValue = errors.New("invalid value")
)

var (
	hundred = decimal.NewFromInt(100)
	twenty  = decimal.NewFromInt(20)
	tenth   = decimal.New(1, -1)
)

// EquivalentAmount scales sourceAmount from one wealth figure to another so that it represents
// the same share of wealth: (sourceAmount / sourceNetWorth) * targetNetWorth.
// The amount may be zero; both net worth figures must be strictly positive.
func EquivalentAmount(sourceAmount, sourceNetWorth, targetNetWorth *decimal.Decimal) (decimal.Decimal, error) {
	if sourceAmount == nil || sourceNetWorth == nil || targetNetWorth == nil {
		return decimal.Zero, fmt.Errorf("%w: amount, source net worth and target net worth are required", ErrMissingArgument)
	}
	if sourceAmount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must be non-negative", ErrInvalidValue)
	}
	if !sourceNetWorth.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: source net worth must be positive", ErrInvalidValue)
	}
	if !targetNetWorth.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: target net worth must be positive", ErrInvalidValue)
	}
	if sourceAmount.IsZero() {
		return decimal.Zero, nil
	}

	// Multiplying first keeps the product exact; only the final division is rounded.
	return sourceAmount.Mul(*targetNetWorth).Div(*sourceNetWorth), nil
}

// ToReferenceEquivalent converts a subject's spending into the reference party's scale,
// e.g. what a billionaire's purchase is worth to the median household.
func ToReferenceEquivalent(subjectAmount, subjectNetWorth, referenceNetWorth *decimal.Decimal) (decimal.Decimal, error) {
	return EquivalentAmount(subjectAmount, subjectNetWorth, referenceNetWorth)
}

// ToSubjectEquivalent converts the reference party's spending into the subject's scale.
func ToSubjectEquivalent(referenceAmount, referenceNetWorth, subjectNetWorth *decimal.Decimal) (decimal.Decimal, error) {
	return EquivalentAmount(referenceAmount, referenceNetWorth, subjectNetWorth)
}

// PercentageOfWealth reports amount as a percentage of totalWealth with exactly one fractional
// digit. Results above 100 are legitimate.
func PercentageOfWealth(amount, totalWealth *decimal.Decimal) (string, error) {
	if amount == nil || totalWealth == nil {
		return "", fmt.Errorf("%w: amount and total wealth are required", ErrMissingArgument)
	}
	if !totalWealth.IsPositive() {
		return "", fmt.Errorf("%w: total wealth must be positive", ErrInvalidValue)
	}
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: amount must be non-negative", ErrInvalidValue)
	}

	// The quotient is truncated to one digit and the exact remainder decides the rounding, so
	// the half-away-from-zero rule is applied to the exact ratio only once.
	q, r := amount.Mul(hundred).QuoRem(*totalWealth, 1)
	if r.Mul(twenty).GreaterThanOrEqual(*totalWealth) {
		q = q.Add(tenth)
	}
	return q.StringFixed(1), nil
}
