// Package comparison turns a selected billionaire, a direction and an entered amount into the
// figures and sentence shown to the user. All state lives in an explicit View value; every
// transition returns a new View.
package comparison

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/elonulator/wealth-calculator/internal/dataset"
)

// Direction says which side of the comparison the entered amount belongs to.
type Direction int

const (
	// BillionaireToMedian converts a billionaire's spending into the median household's scale.
	BillionaireToMedian Direction = iota
	// MedianToBillionaire converts the median household's spending into a billionaire's scale.
	MedianToBillionaire
)

func (d Direction) String() string {
	switch d {
	case BillionaireToMedian:
		return "billionaire-to-median"
	case MedianToBillionaire:
		return "median-to-billionaire"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Swap returns the opposite direction.
func (d Direction) Swap() Direction {
	if d == BillionaireToMedian {
		return MedianToBillionaire
	}
	return BillionaireToMedian
}

// ParseDirection accepts the names produced by Direction.String. An empty string selects the
// default direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "billionaire-to-median":
		return BillionaireToMedian, nil
	case "median-to-billionaire":
		return MedianToBillionaire, nil
	default:
		return 0, fmt.Errorf("unknown direction %q: use billionaire-to-median or median-to-billionaire", s)
	}
}

// View is the complete state of one comparison screen.
type View struct {
	Subject   *dataset.Person
	Direction Direction
	// Amount is the figure typed on the input side; nil when the field is empty.
	Amount *decimal.Decimal
	// SubjectNetWorth and MedianNetWorth hold figures the user typed over the dataset values.
	// nil means the dataset figure is used.
	SubjectNetWorth *decimal.Decimal
	MedianNetWorth  *decimal.Decimal
}

// NewView starts with the given billionaire selected, converting from billionaire to median.
func NewView(subject dataset.Person) View {
	return View{Subject: &subject}
}

// SelectSubject switches the billionaire being compared. The entered amount is kept; an edited
// billionaire net worth is dropped in favour of the new person's figure.
func (v View) SelectSubject(p dataset.Person) View {
	v.Subject = &p
	v.SubjectNetWorth = nil
	return v
}

// ClearSubject deselects the billionaire.
func (v View) ClearSubject() View {
	v.Subject = nil
	return v
}

// SwapDirection flips which side the entered amount belongs to.
func (v View) SwapDirection() View {
	v.Direction = v.Direction.Swap()
	return v
}

// OverrideSubjectNetWorth replaces the selected billionaire's net worth. nil restores the
// dataset figure.
func (v View) OverrideSubjectNetWorth(netWorth *decimal.Decimal) View {
	v.SubjectNetWorth = copyDecimal(netWorth)
	return v
}

// OverrideMedianNetWorth replaces the median household net worth. nil restores the dataset figure.
func (v View) OverrideMedianNetWorth(netWorth *decimal.Decimal) View {
	v.MedianNetWorth = copyDecimal(netWorth)
	return v
}

// UpdateAmount replaces the entered amount. A nil amount clears the field.
func (v View) UpdateAmount(amount *decimal.Decimal) View {
	v.Amount = copyDecimal(amount)
	return v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
