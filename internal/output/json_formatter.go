package output

import (
	"encoding/json"

	"github.com/elonulator/wealth-calculator/internal/dataset"
)

// PersonDocument is the JSON form of a billionaire. Net worth is a plain JSON number; the label
// is the scaled currency text shown next to the name, e.g. "$744.00 billion".
type PersonDocument struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	NetWorth      float64 `json:"netWorth"`
	NetWorthLabel string  `json:"netWorthLabel"`
	Source        string  `json:"source"`
}

// BillionairesDocument is the JSON document served at /api/billionaires.
type BillionairesDocument struct {
	Billionaires           []PersonDocument `json:"billionaires"`
	MedianAmericanNetWorth float64          `json:"medianAmericanNetWorth"`
	LastUpdated            string           `json:"lastUpdated"`
}

// NewPersonDocument converts a billionaire for JSON encoding.
func NewPersonDocument(p dataset.Person) PersonDocument {
	return PersonDocument{
		ID:            p.ID,
		Name:          p.Name,
		NetWorth:      p.NetWorth.InexactFloat64(),
		NetWorthLabel: CurrencyLabel(p.NetWorth),
		Source:        p.Source,
	}
}

// NewBillionairesDocument converts a listing for JSON encoding.
func NewBillionairesDocument(l *Listing) BillionairesDocument {
	doc := BillionairesDocument{
		Billionaires:           make([]PersonDocument, 0, len(l.People)),
		MedianAmericanNetWorth: l.Median.InexactFloat64(),
		LastUpdated:            l.LastUpdated,
	}
	for _, p := range l.People {
		doc.Billionaires = append(doc.Billionaires, NewPersonDocument(p))
	}
	return doc
}

// JSONFormatter serializes the listing as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(l *Listing) ([]byte, error) {
	return json.MarshalIndent(NewBillionairesDocument(l), "", "  ")
}
