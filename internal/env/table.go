package env

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyTable     = errors.New("table has no mappings")
	ErrUnsortedTable  = errors.New("table domains must be strictly ascending")
	ErrInvalidMapping = errors.New("table mapping is not a number")
)

// Mapping is one domain/range pair of a lookup table.
type Mapping struct {
	Domain float64
	Range  float64
}

// Table is an immutable piecewise-linear lookup table.
type Table struct {
	mappings []Mapping
}

// NewTable validates the mappings and copies them into a Table.
func NewTable(mappings ...Mapping) (Table, error) {
	if len(mappings) == 0 {
		return Table{}, ErrEmptyTable
	}
	for i, m := range mappings {
		if math.IsNaN(m.Domain) || math.IsNaN(m.Range) {
			return Table{}, fmt.Errorf("mapping %d: %w", i, ErrInvalidMapping)
		}
		if i > 0 && m.Domain <= mappings[i-1].Domain {
			return Table{}, fmt.Errorf("mapping %d (%g after %g): %w",
				i, m.Domain, mappings[i-1].Domain, ErrUnsortedTable)
		}
	}
	return Table{mappings: append([]Mapping(nil), mappings...)}, nil
}

// MustTable is NewTable for tables fixed at compile time.
func MustTable(mappings ...Mapping) Table {
	t, err := NewTable(mappings...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) Len() int { return len(t.mappings) }

// Domain returns the smallest and largest domain in the table.
func (t Table) Domain() (lo, hi float64) {
	return t.mappings[0].Domain, t.mappings[len(t.mappings)-1].Domain
}

// Lookup linearly interpolates the range at domain. Values outside the
// table clamp to the first or last range.
func (t Table) Lookup(domain float64) float64 {
	m := t.mappings
	last := len(m) - 1

	if domain <= m[0].Domain {
		return m[0].Range
	}
	if domain >= m[last].Domain {
		return m[last].Range
	}

	i := 1
	for m[i].Domain < domain {
		i++
	}
	if m[i].Domain == domain {
		return m[i].Range
	}

	lo, hi := m[i-1], m[i]
	ratio := (domain - lo.Domain) / (hi.Domain - lo.Domain)
	return lo.Range + (hi.Range-lo.Range)*ratio
}
