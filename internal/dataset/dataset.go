// Package dataset holds the fixed table of billionaires and the median household net worth
// they are compared against. A Dataset is validated once when loaded and is read-only
// afterwards, so it can be shared between goroutines without locking.
package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed billionaires.yaml
var defaultData []byte

// Person is a billionaire that spending can be compared against.
type Person struct {
	ID       int             `yaml:"id"`
	Name     string          `yaml:"name"`
	NetWorth decimal.Decimal `yaml:"net_worth"`
	Source   string          `yaml:"source"`
}

// Dataset is the immutable comparison table.
type Dataset struct {
	people      []Person
	median      decimal.Decimal
	lastUpdated string
}

type file struct {
	LastUpdated            string          `yaml:"last_updated"`
	MedianAmericanNetWorth decimal.Decimal `yaml:"median_american_net_worth"`
	Billionaires           []Person        `yaml:"billionaires"`
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	ds, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	return ds, nil
}

// LoadFromFile loads a dataset from a YAML file
func LoadFromFile(filename string) (*Dataset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("dataset validation failed: %w", err)
	}
	people := make([]Person, len(f.Billionaires))
	copy(people, f.Billionaires)
	return &Dataset{people: people, median: f.MedianAmericanNetWorth, lastUpdated: f.LastUpdated}, nil
}

func validate(f *file) error {
	if len(f.Billionaires) == 0 {
		return fmt.Errorf("no billionaires provided")
	}
	if !f.MedianAmericanNetWorth.IsPositive() {
		return fmt.Errorf("median american net worth must be positive")
	}
	if f.LastUpdated == "" {
		return fmt.Errorf("last updated date is required")
	}
	if _, err := time.Parse("2006-01-02", f.LastUpdated); err != nil {
		return fmt.Errorf("last updated date %q must be formatted YYYY-MM-DD", f.LastUpdated)
	}

	seen := make(map[int]bool, len(f.Billionaires))
	for i, p := range f.Billionaires {
		if err := validatePerson(&p); err != nil {
			return fmt.Errorf("billionaire %d validation failed: %w", i, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate billionaire id %d", p.ID)
		}
		seen[p.ID] = true
		if i > 0 && p.NetWorth.GreaterThan(f.Billionaires[i-1].NetWorth) {
			return fmt.Errorf("billionaires must be sorted by net worth, %s is out of order", p.Name)
		}
	}
	return nil
}

func validatePerson(p *Person) error {
	if p.ID <= 0 {
		return fmt.Errorf("id must be positive")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !p.NetWorth.IsPositive() {
		return fmt.Errorf("net worth must be positive")
	}
	return nil
}

// People returns the billionaires, richest first. The slice is a copy.
func (d *Dataset) People() []Person {
	out := make([]Person, len(d.people))
	copy(out, d.people)
	return out
}

// Find looks a billionaire up by id.
func (d *Dataset) Find(id int) (Person, bool) {
	for _, p := range d.people {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// First returns the richest billionaire, the one selected by default.
func (d *Dataset) First() Person { return d.people[0] }

// MedianNetWorth is the reference figure every billionaire is compared with.
func (d *Dataset) MedianNetWorth() decimal.Decimal { return d.median }

// LastUpdated is the date the figures were taken, formatted YYYY-MM-DD.
func (d *Dataset) LastUpdated() string { return d.lastUpdated }
