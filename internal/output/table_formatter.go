package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// TableFormatter renders the listing as an aligned console table.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(l *Listing) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNET WORTH\tDOLLARS\tSOURCE")
	for _, p := range l.People {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, CurrencyLabel(p.NetWorth), IntegerWithCommas(p.NetWorth), p.Source)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "\nMedian American net worth: %s%s (as of %s)\n",
		currencySymbol, IntegerWithCommas(l.Median), l.LastUpdated)
	return buf.Bytes(), nil
}
