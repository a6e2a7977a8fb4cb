package currency

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/sweets/pkg/types"
)

// Supported currency codes.
const (
	Euro   = "euro"
	Dollar = "dollar"
	NTD    = "ntd"
	Yen    = "yen"
	Yuan   = "yuan"
)

// Reference is the pivot currency; its rate is always 1.
const Reference = Dollar

// defaultRates maps each code to its rate against the reference currency.
var defaultRates = map[string]float64{
	Euro:   0.841425,
	Dollar: 1,
	NTD:    0.033301,
	Yen:    0.009127,
	Yuan:   0.153041,
}

// Table is an immutable currency rate table. It is safe for concurrent use.
type Table struct {
	rates  map[string]float64
	strict bool
}

// Option configures a Table.
type Option func(*Table)

// WithStrict makes Convert fail with types.ErrUnknownCurrency for unknown
// codes instead of falling back to the reference rate.
func WithStrict() Option {
	return func(t *Table) {
		t.strict = true
	}
}

// New returns a Table holding the fixed set of supported rates.
func New(opts ...Option) *Table {
	t := &Table{rates: make(map[string]float64, len(defaultRates))}
	for code, rate := range defaultRates {
		t.rates[code] = rate
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Strict reports whether the table rejects unknown codes.
func (t *Table) Strict() bool { return t.strict }

// Reference returns the pivot currency code.
func (t *Table) Reference() string { return Reference }

// Lookup returns the rate for code and whether the code is known.
// Codes are case-insensitive.
func (t *Table) Lookup(code string) (float64, bool) {
	rate, ok := t.rates[normalize(code)]
	return rate, ok
}

// Rate returns the rate for code, or the reference rate (1) when the code is
// unknown.
func (t *Table) Rate(code string) float64 {
	if rate, ok := t.Lookup(code); ok {
		return rate
	}
	return t.rates[Reference]
}

// Convert converts amount from one currency to another by way of the
// reference currency. In strict mode an unknown code on either side returns
// an error wrapping types.ErrUnknownCurrency.
func (t *Table) Convert(amount float64, from, to string) (float64, error) {
	if t.strict {
		for _, code := range []string{from, to} {
			if _, ok := t.Lookup(code); !ok {
				return 0, fmt.Errorf("%w: %q", types.ErrUnknownCurrency, code)
			}
		}
	}
	return amount * t.Rate(from) * t.Rate(to), nil
}

// Codes returns the known currency codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format renders amount rounded half away from zero to two decimal places,
// followed by the normalized currency code. NaN and infinities are printed
// as "NaN", "+Inf" and "-Inf".
func Format(amount float64, code string) string {
	if !IsFinite(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64) + " " + normalize(code)
	}
	return decimal.NewFromFloat(amount).StringFixed(2) + " " + normalize(code)
}

// IsFinite reports whether amount is neither NaN nor an infinity.
func IsFinite(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// CheckAmount returns an error wrapping types.ErrInvalidAmount when amount
// is NaN or infinite.
func CheckAmount(amount float64) error {
	if !IsFinite(amount) {
		return fmt.Errorf("%w: %v", types.ErrInvalidAmount, amount)
	}
	return nil
}

func normalize(code string) string {
	return cases.Lower(language.Und).String(code)
}
