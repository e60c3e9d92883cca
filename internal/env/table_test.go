package env

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		mappings []Mapping
		want     error
	}{
		{"empty", nil, ErrEmptyTable},
		{"descending", []Mapping{{2, 1}, {1, 1}}, ErrUnsortedTable},
		{"duplicate domain", []Mapping{{1, 1}, {1, 2}}, ErrUnsortedTable},
		{"nan domain", []Mapping{{math.NaN(), 1}}, ErrInvalidMapping},
		{"nan range", []Mapping{{0, 1}, {1, math.NaN()}}, ErrInvalidMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.mappings...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustTablePanics(t *testing.T) {
	assert.Panics(t, func() { MustTable() })
	assert.NotPanics(t, func() { MustTable(Mapping{0, 1}) })
}

func TestNewTableCopiesInput(t *testing.T) {
	in := []Mapping{{0, 0}, {10, 100}}
	table, err := NewTable(in...)
	require.NoError(t, err)

	in[1].Range = -1
	assert.Equal(t, 50.0, table.Lookup(5))
	assert.Equal(t, 2, table.Len())

	lo, hi := table.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)
}

func TestLookup(t *testing.T) {
	table := MustTable(Mapping{0, 10}, Mapping{10, 20}, Mapping{20, 0}, Mapping{40, 0})

	tests := []struct {
		name   string
		domain float64
		want   float64
	}{
		{"clamp low", -5, 10},
		{"first", 0, 10},
		{"rising", 5, 15},
		{"exact", 10, 20},
		{"falling", 15, 10},
		{"flat", 30, 0},
		{"last", 40, 0},
		{"clamp high", 1e9, 0},
		{"negative infinity", math.Inf(-1), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, table.Lookup(tt.domain), 1e-12)
		})
	}
}

func TestLookupSingleMapping(t *testing.T) {
	table := MustTable(Mapping{3, 7})
	assert.Equal(t, 7.0, table.Lookup(-1))
	assert.Equal(t, 7.0, table.Lookup(3))
	assert.Equal(t, 7.0, table.Lookup(100))
}

func TestLookupExactAtEveryMapping(t *testing.T) {
	for _, table := range []Table{gravityTable, densityTable, soundTable, dragTable} {
		for _, m := range table.mappings {
			assert.Equal(t, m.Range, table.Lookup(m.Domain), "domain %g", m.Domain)
		}
	}
}

func TestLookupNeverOvershoots(t *testing.T) {
	for _, table := range []Table{gravityTable, densityTable, soundTable, dragTable} {
		m := table.mappings
		for i := 1; i < len(m); i++ {
			lo := math.Min(m[i-1].Range, m[i].Range)
			hi := math.Max(m[i-1].Range, m[i].Range)
			for _, f := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
				x := m[i-1].Domain + f*(m[i].Domain-m[i-1].Domain)
				got := table.Lookup(x)
				assert.GreaterOrEqual(t, got, lo, "domain %g", x)
				assert.LessOrEqual(t, got, hi, "domain %g", x)
			}
		}
	}
}
