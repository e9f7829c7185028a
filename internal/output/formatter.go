package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/elonulator/wealth-calculator/internal/dataset"
)

// ErrUnsupportedFormat is returned for a format name no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Listing is the billionaire table together with the figure it is compared against.
type Listing struct {
	People      []dataset.Person
	Median      decimal.Decimal
	LastUpdated string
}

// NewListing snapshots a dataset for rendering.
func NewListing(ds *dataset.Dataset) *Listing {
	return &Listing{People: ds.People(), Median: ds.MedianNetWorth(), LastUpdated: ds.LastUpdated()}
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(l *Listing) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// Write runs a formatter and copies its output to w.
func Write(w io.Writer, f Formatter, l *Listing) error {
	data, err := f.Format(l)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

var builtInFormatters = []Formatter{
	TableFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console":     "table",
	"text":        "table",
	"txt":         "table",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter by name or alias.
func GetFormatterByName(name string) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
