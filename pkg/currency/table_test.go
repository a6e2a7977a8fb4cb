package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sweets/pkg/types"
)

func TestReferenceRateIsOne(t *testing.T) {
	tbl := New()
	assert.Equal(t, 1.0, tbl.Rate(tbl.Reference()))
	assert.Equal(t, Dollar, tbl.Reference())
}

func TestRate(t *testing.T) {
	tbl := New()
	tests := []struct {
		code string
		want float64
	}{
		{Euro, 0.841425},
		{Dollar, 1},
		{NTD, 0.033301},
		{Yen, 0.009127},
		{Yuan, 0.153041},
		{"EURO", 0.841425},
		{"Ntd", 0.033301},
		{"peso", 1},
		{"", 1},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Rate(tt.code))
		})
	}
}

func TestLookup(t *testing.T) {
	tbl := New()
	rate, ok := tbl.Lookup("YEN")
	assert.True(t, ok)
	assert.Equal(t, 0.009127, rate)

	_, ok = tbl.Lookup("peso")
	assert.False(t, ok)
}

func TestConvertPivotsThroughReference(t *testing.T) {
	tbl := New()
	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{name: "reference identity", amount: 1, from: Dollar, to: Dollar, want: 1},
		{name: "ntd to euro", amount: 20, from: NTD, to: Euro, want: 20 * 0.033301 * 0.841425},
		{name: "euro to dollar", amount: 10, from: Euro, to: Dollar, want: 8.41425},
		{name: "unknown source falls back", amount: 10, from: "peso", to: Yen, want: 10 * 0.009127},
		{name: "unknown target falls back", amount: 10, from: Yuan, to: "peso", want: 10 * 0.153041},
		{name: "zero stays zero", amount: 0, from: Euro, to: Yen, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Convert(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestConvertNeverChangesSign(t *testing.T) {
	tbl := New()
	for _, from := range tbl.Codes() {
		for _, to := range tbl.Codes() {
			got, err := tbl.Convert(12.5, from, to)
			require.NoError(t, err)
			assert.Greater(t, got, 0.0, "%s -> %s", from, to)
		}
	}
}

func TestConvertStrict(t *testing.T) {
	tbl := New(WithStrict())
	assert.True(t, tbl.Strict())

	_, err := tbl.Convert(1, "peso", Dollar)
	assert.ErrorIs(t, err, types.ErrUnknownCurrency)

	_, err = tbl.Convert(1, Dollar, "peso")
	assert.ErrorIs(t, err, types.ErrUnknownCurrency)

	got, err := tbl.Convert(2, "EURO", Dollar)
	require.NoError(t, err)
	assert.InDelta(t, 1.68285, got, 1e-12)
}

func TestCodesSorted(t *testing.T) {
	assert.Equal(t, []string{Dollar, Euro, NTD, Yen, Yuan}, New().Codes())
}

func TestTablesAreIndependent(t *testing.T) {
	a := New()
	a.rates[Euro] = 2
	assert.Equal(t, 0.841425, New().Rate(Euro))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.56 euro", Format(0.5604, "EURO"))
	assert.Equal(t, "20.00 ntd", Format(20, NTD))
	assert.Equal(t, "1.24 dollar", Format(1.235, Dollar))
}

func TestFormatNonFinite(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: math.NaN(), want: "NaN euro"},
		{amount: math.Inf(1), want: "+Inf euro"},
		{amount: math.Inf(-1), want: "-Inf euro"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, Euro))
		})
	}
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount(0))
	assert.NoError(t, CheckAmount(-12.5))
	assert.ErrorIs(t, CheckAmount(math.NaN()), types.ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(math.Inf(1)), types.ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(math.Inf(-1)), types.ErrInvalidAmount)
}

func TestTableSatisfiesConverter(t *testing.T) {
	var _ types.Converter = New()
}
