package comparison

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/elonulator/wealth-calculator/internal/calculation"
	"github.com/elonulator/wealth-calculator/internal/output"
)

var (
	// ErrNoSubject is returned when no billionaire is selected.
	ErrNoSubject = errors.New("no billionaire selected")
	// ErrNoAmount is returned when the input field is empty.
	ErrNoAmount = errors.New("no amount entered")
)

// Result holds both sides of a comparison and the sentence describing it.
type Result struct {
	Direction       Direction
	Subject         string
	SubjectAmount   decimal.Decimal
	ReferenceAmount decimal.Decimal
	// SubjectNetWorth and ReferenceNetWorth are the figures the conversion used.
	SubjectNetWorth   decimal.Decimal
	ReferenceNetWorth decimal.Decimal
	// Percentage is the share of wealth the entered amount represents, one decimal digit.
	Percentage     string
	SubjectLabel   string
	ReferenceLabel string
	// EquivalentDisplay is the computed side rendered for an input field, e.g. "25,940.86".
	EquivalentDisplay string
	Message           string
}

// Compute runs the conversion described by v against the median household net worth. Net worth
// overrides carried by v take precedence over the dataset figures.
func Compute(v View, medianNetWorth decimal.Decimal) (Result, error) {
	if v.Subject == nil {
		return Result{}, ErrNoSubject
	}
	if v.Amount == nil {
		return Result{}, ErrNoAmount
	}

	subjectNetWorth := v.Subject.NetWorth
	if v.SubjectNetWorth != nil {
		subjectNetWorth = *v.SubjectNetWorth
	}
	if v.MedianNetWorth != nil {
		medianNetWorth = *v.MedianNetWorth
	}
	res := Result{
		Direction:         v.Direction,
		Subject:           v.Subject.Name,
		SubjectNetWorth:   subjectNetWorth,
		ReferenceNetWorth: medianNetWorth,
	}

	var (
		equivalent decimal.Decimal
		err        error
	)
	switch v.Direction {
	case BillionaireToMedian:
		equivalent, err = calculation.ToReferenceEquivalent(v.Amount, &subjectNetWorth, &medianNetWorth)
		if err != nil {
			return Result{}, err
		}
		res.SubjectAmount, res.ReferenceAmount = *v.Amount, equivalent
		res.Percentage, err = calculation.PercentageOfWealth(v.Amount, &subjectNetWorth)
	case MedianToBillionaire:
		equivalent, err = calculation.ToSubjectEquivalent(v.Amount, &medianNetWorth, &subjectNetWorth)
		if err != nil {
			return Result{}, err
		}
		res.SubjectAmount, res.ReferenceAmount = equivalent, *v.Amount
		res.Percentage, err = calculation.PercentageOfWealth(v.Amount, &medianNetWorth)
	default:
		return Result{}, fmt.Errorf("unsupported direction %v", v.Direction)
	}
	if err != nil {
		return Result{}, err
	}

	res.SubjectLabel = output.CurrencyLabel(res.SubjectAmount)
	res.ReferenceLabel = output.CurrencyLabel(res.ReferenceAmount)
	res.EquivalentDisplay = output.NumberWithDecimals(equivalent)
	res.Message = message(res)
	return res, nil
}

func message(r Result) string {
	pct := output.FormatPercentage(r.Percentage)
	if r.Direction == MedianToBillionaire {
		return fmt.Sprintf("The median American spending %s (%s of their wealth) is like %s spending %s.",
			r.ReferenceLabel, pct, r.Subject, r.SubjectLabel)
	}
	return fmt.Sprintf("%s spending %s (%s of their wealth) is like the median American spending %s.",
		r.Subject, r.SubjectLabel, pct, r.ReferenceLabel)
}
