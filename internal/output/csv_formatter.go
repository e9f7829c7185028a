package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per billionaire followed by the median household row, which
// has no id.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(l *Listing) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"ID", "Name", "NetWorth", "NetWorthLabel", "Source", "AsOf"}); err != nil {
		return nil, err
	}
	for _, p := range l.People {
		row := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.NetWorth.StringFixed(0),
			CurrencyLabel(p.NetWorth),
			p.Source,
			l.LastUpdated,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"", "Median American", l.Median.StringFixed(0), CurrencyLabel(l.Median), "", l.LastUpdated}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
